package factory

import (
	"context"

	"github.com/kbukum/fixturekit/logger"
)

// ClearAllCreated deletes every recorded entity in creation order. Entities
// whose identity is absent are skipped. The sweep stops at the first
// failure; the failing entity and the ones after it stay recorded, the
// ones already deleted do not. Calling it again after success is a no-op.
func (s *Session) ClearAllCreated(ctx context.Context) error {
	return s.clearFrom(ctx, 0)
}

// clearFrom sweeps the entities recorded at or after mark.
func (s *Session) clearFrom(ctx context.Context, mark int) error {
	if mark < 0 || mark > len(s.ledger) {
		mark = len(s.ledger)
	}
	swept := 0
	for len(s.ledger) > mark {
		obj := s.ledger[mark]
		if err := s.delete(ctx, obj); err != nil {
			s.log.WithContext(ctx).Debug("Cleanup stopped", logger.Fields(
				"deleted", swept,
				"remaining", len(s.ledger)-mark,
				"error", err.Error(),
			))
			return err
		}
		s.ledger = append(s.ledger[:mark], s.ledger[mark+1:]...)
		swept++
	}
	if swept > 0 {
		s.log.WithContext(ctx).Debug("Cleanup finished", logger.Fields("deleted", swept))
	}
	return nil
}
