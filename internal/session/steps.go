package session

// StepNames is the fixed order of wizard edit sections.
var StepNames = []string{"Basics", "Experience", "Education", "Skills", "Projects"}

// Step returns the current wizard step index.
func (s *Session) Step() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.step
}

// StepName returns the display name of the current step.
func (s *Session) StepName() string {
	return StepNames[s.Step()]
}

// NextStep advances one step, clamped to the last step. Never wraps.
func (s *Session) NextStep() int {
	return s.GoToStep(s.Step() + 1)
}

// PrevStep moves back one step, clamped to the first step. Never wraps.
func (s *Session) PrevStep() int {
	return s.GoToStep(s.Step() - 1)
}

// GoToStep jumps to the given step index, clamped to [0, len-1].
func (s *Session) GoToStep(i int) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	if i < 0 {
		i = 0
	}
	if i > len(StepNames)-1 {
		i = len(StepNames) - 1
	}
	s.step = i
	return s.step
}
