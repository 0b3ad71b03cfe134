package coordinator

import (
	"context"
	"fmt"

	"github.com/stpnv0/EventHub/internal/domain"
	"github.com/wb-go/wbf/logger"
)

type opKind int

const (
	opCreate opKind = iota
	opUpdate
	opDelete
	opDeleteAll
	opRegister
)

func (k opKind) String() string {
	switch k {
	case opCreate:
		return "create"
	case opUpdate:
		return "update"
	case opDelete:
		return "delete"
	case opDeleteAll:
		return "delete-all"
	case opRegister:
		return "register"
	default:
		return fmt.Sprintf("op(%d)", int(k))
	}
}

type refreshMode int

const (
	refreshNone refreshMode = iota
	// refreshForeground runs before the success notice; failures are logged only.
	refreshForeground
	// refreshBackground runs after the caller has returned; failures are logged only.
	refreshBackground
)

type policy struct {
	adminOnly bool
	// optimistic kinds apply their local effect and success notice before the
	// remote call, and undo the effect if the call fails.
	optimistic bool
	catalog    refreshMode
	ledger     bool
}

var policies = map[opKind]policy{
	opCreate:    {adminOnly: true, catalog: refreshForeground},
	opUpdate:    {adminOnly: true, catalog: refreshForeground},
	opDelete:    {adminOnly: true, optimistic: true, catalog: refreshBackground},
	opDeleteAll: {adminOnly: true, catalog: refreshForeground},
	opRegister:  {catalog: refreshForeground, ledger: true},
}

type mutation struct {
	kind opKind
	call func(ctx context.Context, user *domain.User) error
	// apply is required for optimistic kinds and returns the undo.
	apply   func() (undo func())
	success string
	failure string
}

// run is the single dispatch point for every write. Its outcome is always
// reported through the notice channel; the returned error is informational.
func (c *Coordinator) run(ctx context.Context, m mutation) error {
	p, ok := policies[m.kind]
	if !ok {
		return fmt.Errorf("no policy for %s", m.kind)
	}

	user, err := c.commit(ctx, m, p)
	if err != nil {
		return err
	}

	c.reconcile(ctx, p)

	if !p.optimistic && c.currentUser() == user {
		c.notices.Show(m.success)
	}
	return nil
}

// commit performs the local effect and the remote call inside the session, so
// an undo can never land after the session has been reset.
func (c *Coordinator) commit(ctx context.Context, m mutation, p policy) (*domain.User, error) {
	ctx, user, leave := c.enterSession(ctx)
	defer leave()

	if user == nil {
		c.notices.Show(msgSignInRequired)
		return nil, domain.ErrNotSignedIn
	}
	if p.adminOnly && !user.IsAdmin() {
		c.notices.Show(msgAdminOnly)
		return nil, fmt.Errorf("%s: %w", m.kind, domain.ErrForbidden)
	}

	var undo func()
	if p.optimistic {
		undo = m.apply()
		c.notices.Show(m.success)
	}

	if err := m.call(ctx, user); err != nil {
		if undo != nil {
			undo()
		}
		c.logger.Error("mutation failed",
			logger.String("op", m.kind.String()),
			logger.String("user_id", user.ID),
			logger.String("error", err.Error()),
		)
		c.notices.Show(m.failure)
		return nil, err
	}

	c.logger.Info("mutation confirmed",
		logger.String("op", m.kind.String()),
		logger.String("user_id", user.ID),
	)
	return user, nil
}

// reconcile reloads what the write touched. Each reload enters the session on
// its own and is skipped once the session has ended.
func (c *Coordinator) reconcile(ctx context.Context, p policy) {
	switch p.catalog {
	case refreshForeground:
		c.refreshCatalog(ctx, false)
	case refreshBackground:
		c.inBackground(func(ctx context.Context) {
			c.refreshCatalog(ctx, false)
		})
	}

	if p.ledger {
		c.refreshLedger(ctx, false)
	}
}
