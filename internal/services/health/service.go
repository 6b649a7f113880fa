package health

// Service encapsulates health-related checks.
type Service struct {
	Provider string
	Model    string
}

// NewService constructs a new health service.
func NewService(provider, model string) *Service {
	return &Service{Provider: provider, Model: model}
}

// Status returns a simple health payload.
func (s *Service) Status() map[string]any {
	return map[string]any{
		"ok":       true,
		"provider": s.Provider,
		"model":    s.Model,
	}
}
