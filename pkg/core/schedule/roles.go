package schedule

import "go.uber.org/zap"

// ListRoles returns a copy of the recognised role set.
func (s *Store) ListRoles() []string {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]string, len(s.roles))
	copy(out, s.roles)
	return out
}

// AddRole adds a role tag to the set. Adding an existing role is a no-op.
func (s *Store) AddRole(name string) []string {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, r := range s.roles {
		if r == name {
			return s.rolesCopyLocked()
		}
	}
	s.roles = append(s.roles, name)

	s.logger.Info("role added", zap.String("role", name))
	s.persistLocked()
	return s.rolesCopyLocked()
}

// RemoveRole removes a role tag. Employees and shifts reference roles by
// value, so existing records keep the removed tag; orphaned role strings are
// tolerated.
func (s *Store) RemoveRole(name string) []string {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i, r := range s.roles {
		if r == name {
			s.roles = append(s.roles[:i], s.roles[i+1:]...)
			s.logger.Info("role removed", zap.String("role", name))
			s.persistLocked()
			break
		}
	}
	return s.rolesCopyLocked()
}

func (s *Store) rolesCopyLocked() []string {
	out := make([]string, len(s.roles))
	copy(out, s.roles)
	return out
}
