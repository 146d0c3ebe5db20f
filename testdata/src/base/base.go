package base

type Service struct{}

//callbase:require
func (s *Service) Stop() {} // want Stop:"callbase:require"
