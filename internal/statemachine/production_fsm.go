package statemachine

import (
	"context"
	"errors"
	"fmt"

	"github.com/SscSPs/excise_register_app/internal/apperrors"
	"github.com/SscSPs/excise_register_app/internal/core/domain"
	"github.com/looplab/fsm"
)

const (
	EventDeclare  = "declare"
	EventFinalize = "finalize"
)

// ProductionFSM wraps a Reg-A production entry with its state machine
type ProductionFSM struct {
	entry *domain.BottlingProductionEntry
	fsm   *fsm.FSM
}

// NewProductionFSM creates a new production state machine starting at the entry's status
func NewProductionFSM(entry *domain.BottlingProductionEntry) *ProductionFSM {
	status := entry.Status
	if status == "" {
		status = domain.ProductionPlanned
	}

	pfsm := &ProductionFSM{entry: entry}
	pfsm.fsm = fsm.NewFSM(
		string(status),
		fsm.Events{
			// planned/active → active (counts may be re-declared until completion)
			{Name: EventDeclare, Src: []string{string(domain.ProductionPlanned), string(domain.ProductionActive)}, Dst: string(domain.ProductionActive)},

			// active → completed (terminal)
			{Name: EventFinalize, Src: []string{string(domain.ProductionActive)}, Dst: string(domain.ProductionCompleted)},
		},
		fsm.Callbacks{},
	)

	return pfsm
}

// Declare transitions the entry to ACTIVE
func (p *ProductionFSM) Declare(ctx context.Context) error {
	return p.fire(ctx, EventDeclare)
}

// Finalize transitions the entry to COMPLETED
func (p *ProductionFSM) Finalize(ctx context.Context) error {
	return p.fire(ctx, EventFinalize)
}

func (p *ProductionFSM) fire(ctx context.Context, event string) error {
	if p.fsm.Current() == string(domain.ProductionCompleted) {
		return apperrors.NewStateTransitionError(fmt.Sprintf("batch %s session %d is COMPLETED and cannot %s", p.entry.BatchID, p.entry.SessionNo, event))
	}

	if err := p.fsm.Event(ctx, event); err != nil {
		var noTransition fsm.NoTransitionError
		if !errors.As(err, &noTransition) {
			return apperrors.NewStateTransitionError(fmt.Sprintf("cannot %s production entry in state %s", event, p.fsm.Current()))
		}
	}

	p.entry.Status = domain.ProductionStatus(p.fsm.Current())
	return nil
}

// Current returns the current state
func (p *ProductionFSM) Current() domain.ProductionStatus {
	return domain.ProductionStatus(p.fsm.Current())
}

// Can checks if a transition is possible
func (p *ProductionFSM) Can(event string) bool {
	return p.fsm.Can(event)
}
