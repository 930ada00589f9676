//go:build e2e

package e2e

import (
	"context"
	"fmt"
	"io"
	"path"
	"sync"

	"nagoyameshi/internal/usecase/commands"
)

// FakeBilling keeps customers, cards and subscriptions in memory so the
// subscription flow runs without the payment provider.
type FakeBilling struct {
	mu            sync.Mutex
	seq           int
	defaults      map[string]string
	subscriptions map[string][]string
	Detached      []string
	failNext      error
}

func NewFakeBilling() *FakeBilling {
	return &FakeBilling{
		defaults:      map[string]string{},
		subscriptions: map[string][]string{},
	}
}

func (f *FakeBilling) next(prefix string) string {
	f.seq++
	return fmt.Sprintf("%s_%d", prefix, f.seq)
}

// FailNextCall makes the next mutating provider call return err.
func (f *FakeBilling) FailNextCall(err error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.failNext = err
}

func (f *FakeBilling) takeFailure() error {
	err := f.failNext
	f.failNext = nil
	return err
}

func (f *FakeBilling) CreateCustomer(_ context.Context, _, _ string) (string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if err := f.takeFailure(); err != nil {
		return "", err
	}
	return f.next("cus"), nil
}

func (f *FakeBilling) AttachPaymentMethod(_ context.Context, _, _ string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.takeFailure()
}

func (f *FakeBilling) SetDefaultPaymentMethod(_ context.Context, customerID, paymentMethodID string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if err := f.takeFailure(); err != nil {
		return err
	}
	f.defaults[customerID] = paymentMethodID
	return nil
}

func (f *FakeBilling) CreateSubscription(_ context.Context, customerID, _ string) (string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if err := f.takeFailure(); err != nil {
		return "", err
	}
	id := f.next("sub")
	f.subscriptions[customerID] = append(f.subscriptions[customerID], id)
	return id, nil
}

func (f *FakeBilling) ListActiveSubscriptions(_ context.Context, customerID string) ([]string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]string(nil), f.subscriptions[customerID]...), nil
}

func (f *FakeBilling) CancelSubscription(_ context.Context, subscriptionID string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if err := f.takeFailure(); err != nil {
		return err
	}
	for customer, subs := range f.subscriptions {
		kept := subs[:0]
		for _, s := range subs {
			if s != subscriptionID {
				kept = append(kept, s)
			}
		}
		f.subscriptions[customer] = kept
	}
	return nil
}

func (f *FakeBilling) DefaultPaymentMethod(_ context.Context, customerID string) (*commands.PaymentMethodSummary, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	id, ok := f.defaults[customerID]
	if !ok {
		return nil, nil
	}
	return &commands.PaymentMethodSummary{ID: id, Brand: "visa", Last4: "4242", ExpMonth: 12, ExpYear: 2030}, nil
}

func (f *FakeBilling) DetachPaymentMethod(_ context.Context, paymentMethodID string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if err := f.takeFailure(); err != nil {
		return err
	}
	for customer, pm := range f.defaults {
		if pm == paymentMethodID {
			delete(f.defaults, customer)
		}
	}
	f.Detached = append(f.Detached, paymentMethodID)
	return nil
}

// FakeImageStore drains uploads and hands back deterministic names.
type FakeImageStore struct {
	mu    sync.Mutex
	Saved []string
}

func (s *FakeImageStore) Save(_ context.Context, originalFilename, _ string, body io.Reader) (string, error) {
	if _, err := io.Copy(io.Discard, body); err != nil {
		return "", err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	name := fmt.Sprintf("img%d%s", len(s.Saved)+1, path.Ext(originalFilename))
	s.Saved = append(s.Saved, name)
	return name, nil
}

func (f *FakeBilling) Reset() {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.seq = 0
	f.defaults = map[string]string{}
	f.subscriptions = map[string][]string{}
	f.Detached = nil
	f.failNext = nil
}

func (s *FakeImageStore) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.Saved = nil
}
