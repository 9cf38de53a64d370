package services

import (
	"context"
	"sync"

	"golang.org/x/sync/errgroup"

	apperrors "financehub/internal/errors"
	"financehub/internal/logger"
	"financehub/internal/models"
	"financehub/internal/store"
	"financehub/internal/uuid"
)

// Ledger owns the single authoritative copy of the six collections.
//
// Collections are loaded once by Load. Every mutation builds a new slice,
// swaps it in and writes the whole collection back to the store. A failed
// write is logged and otherwise ignored: the in-memory state stays
// authoritative for the life of the process.
type Ledger struct {
	mu           sync.RWMutex
	data         models.Collections
	backend      store.Backend
	seedDefaults bool
}

// NewLedger creates an empty ledger persisting to backend. When
// seedDefaults is set, Load fills absent collections with sample records.
func NewLedger(backend store.Backend, seedDefaults bool) *Ledger {
	return &Ledger{backend: backend, seedDefaults: seedDefaults}
}

// Load reads all six collections concurrently. A collection that has never
// been stored is created, seeded with sample data if enabled.
func (l *Ledger) Load(ctx context.Context) error {
	var data models.Collections
	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error { return loadInto(ctx, l, transactions, &data) })
	g.Go(func() error { return loadInto(ctx, l, bankAccounts, &data) })
	g.Go(func() error { return loadInto(ctx, l, incomes, &data) })
	g.Go(func() error { return loadInto(ctx, l, fixedExpenses, &data) })
	g.Go(func() error { return loadInto(ctx, l, contributions, &data) })
	g.Go(func() error { return loadInto(ctx, l, insurancePolicies, &data) })
	if err := g.Wait(); err != nil {
		return err
	}

	l.mu.Lock()
	l.data = data
	l.mu.Unlock()

	logger.Get().Infow("collections loaded",
		"transactions", len(data.Transactions),
		"bank_accounts", len(data.BankAccounts),
		"incomes", len(data.Incomes),
		"fixed_expenses", len(data.FixedExpenses),
		"contributions", len(data.Contributions),
		"insurance_policies", len(data.InsurancePolicies),
	)
	return nil
}

// Snapshot returns the current collections. The slices must not be modified.
func (l *Ledger) Snapshot() models.Collections {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return l.data
}

func (l *Ledger) persist(ctx context.Context, name models.CollectionName, save func(context.Context) error) {
	// The write outlives a cancelled request.
	if err := save(context.WithoutCancel(ctx)); err != nil {
		logger.Get().Errorw("failed to persist collection",
			"collection", name,
			"error", err,
		)
	}
}

// collection describes one of the six record lists.
type collection[T any] struct {
	name     models.CollectionName
	slot     func(*models.Collections) *[]T
	idOf     func(*T) *string
	notFound *apperrors.AppError
	// prepend puts new records first; others are appended.
	prepend bool
	seed    func() []T
}

// loadInto fills only c's slot of data, so concurrent calls for different
// collections do not race.
func loadInto[T any](ctx context.Context, l *Ledger, c collection[T], data *models.Collections) error {
	items, found, err := store.LoadCollection[T](ctx, l.backend, c.name)
	if err != nil {
		return err
	}
	if !found {
		if l.seedDefaults && c.seed != nil {
			items = c.seed()
		}
		l.persist(ctx, c.name, func(ctx context.Context) error {
			return store.SaveCollection(ctx, l.backend, c.name, items)
		})
	}
	*c.slot(data) = items
	return nil
}

// mutate swaps in the result of change and persists it, all under the write
// lock so stored writes happen in mutation order.
func mutate[T any](ctx context.Context, l *Ledger, c collection[T], change func([]T) ([]T, error)) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	slot := c.slot(&l.data)
	next, err := change(*slot)
	if err != nil {
		return err
	}
	*slot = next
	l.persist(ctx, c.name, func(ctx context.Context) error {
		return store.SaveCollection(ctx, l.backend, c.name, next)
	})
	return nil
}

func (c collection[T]) list(l *Ledger) []T {
	data := l.Snapshot()
	return *c.slot(&data)
}

func (c collection[T]) get(l *Ledger, id string) (*T, error) {
	for _, item := range c.list(l) {
		if *c.idOf(&item) == id {
			return &item, nil
		}
	}
	return nil, c.notFound
}

// add stores item, assigning a UUIDv7 when it carries no id.
func (c collection[T]) add(ctx context.Context, l *Ledger, item T) (*T, error) {
	if id := c.idOf(&item); *id == "" {
		*id = uuid.New()
	}
	id := *c.idOf(&item)

	err := mutate(ctx, l, c, func(items []T) ([]T, error) {
		for i := range items {
			if *c.idOf(&items[i]) == id {
				return nil, apperrors.ErrDuplicateID
			}
		}
		next := make([]T, 0, len(items)+1)
		if c.prepend {
			next = append(next, item)
			next = append(next, items...)
		} else {
			next = append(next, items...)
			next = append(next, item)
		}
		return next, nil
	})
	if err != nil {
		return nil, err
	}
	return &item, nil
}

// remove filters out the record with the given id.
func (c collection[T]) remove(ctx context.Context, l *Ledger, id string) (*T, error) {
	var removed *T
	err := mutate(ctx, l, c, func(items []T) ([]T, error) {
		next := make([]T, 0, len(items))
		for i := range items {
			if *c.idOf(&items[i]) == id {
				removed = &items[i]
				continue
			}
			next = append(next, items[i])
		}
		if removed == nil {
			return nil, c.notFound
		}
		return next, nil
	})
	return removed, err
}

// update replaces the record with the given id by apply's result.
func (c collection[T]) update(ctx context.Context, l *Ledger, id string, apply func(T) T) (*T, error) {
	var updated *T
	err := mutate(ctx, l, c, func(items []T) ([]T, error) {
		next := make([]T, len(items))
		for i := range items {
			next[i] = items[i]
			if *c.idOf(&items[i]) == id {
				next[i] = apply(items[i])
				updated = &next[i]
			}
		}
		if updated == nil {
			return nil, c.notFound
		}
		return next, nil
	})
	return updated, err
}

var (
	transactions = collection[models.Transaction]{
		name:     models.CollectionTransactions,
		slot:     func(c *models.Collections) *[]models.Transaction { return &c.Transactions },
		idOf:     func(t *models.Transaction) *string { return &t.ID },
		notFound: apperrors.ErrTransactionNotFound,
		prepend:  true,
	}
	bankAccounts = collection[models.BankAccount]{
		name:     models.CollectionBankAccounts,
		slot:     func(c *models.Collections) *[]models.BankAccount { return &c.BankAccounts },
		idOf:     func(a *models.BankAccount) *string { return &a.ID },
		notFound: apperrors.ErrBankAccountNotFound,
		seed:     seedBankAccounts,
	}
	incomes = collection[models.Income]{
		name:     models.CollectionIncomes,
		slot:     func(c *models.Collections) *[]models.Income { return &c.Incomes },
		idOf:     func(i *models.Income) *string { return &i.ID },
		notFound: apperrors.ErrIncomeNotFound,
		seed:     seedIncomes,
	}
	fixedExpenses = collection[models.FixedExpense]{
		name:     models.CollectionFixedExpenses,
		slot:     func(c *models.Collections) *[]models.FixedExpense { return &c.FixedExpenses },
		idOf:     func(f *models.FixedExpense) *string { return &f.ID },
		notFound: apperrors.ErrFixedExpenseNotFound,
		seed:     seedFixedExpenses,
	}
	contributions = collection[models.Contribution]{
		name:     models.CollectionContributions,
		slot:     func(c *models.Collections) *[]models.Contribution { return &c.Contributions },
		idOf:     func(s *models.Contribution) *string { return &s.ID },
		notFound: apperrors.ErrContributionNotFound,
	}
	insurancePolicies = collection[models.InsurancePolicy]{
		name:     models.CollectionInsurancePolicies,
		slot:     func(c *models.Collections) *[]models.InsurancePolicy { return &c.InsurancePolicies },
		idOf:     func(p *models.InsurancePolicy) *string { return &p.ID },
		notFound: apperrors.ErrPolicyNotFound,
	}
)
