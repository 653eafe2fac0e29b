package health

// Service encapsulates health-related checks.
type Service struct {
	storeBackend string
	llmProvider  string
}

// NewService constructs a new health service.
func NewService(storeBackend, llmProvider string) *Service {
	return &Service{storeBackend: storeBackend, llmProvider: llmProvider}
}

// Status returns a simple health payload with the active backends.
func (s *Service) Status() map[string]any {
	return map[string]any{
		"ok":       true,
		"store":    s.storeBackend,
		"provider": s.llmProvider,
	}
}
