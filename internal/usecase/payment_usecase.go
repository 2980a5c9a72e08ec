package usecase

import (
	"context"
	"errors"
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"tradehub/internal/domain/entities"
	"tradehub/internal/domain/fees"
	"tradehub/internal/infrastructure/telemetry"
	"tradehub/internal/usecase/interfaces"

	"github.com/google/uuid"
)

var (
	ErrPaymentNotFound       = errors.New("payment not found")
	ErrQuoteNotAccepted      = errors.New("quote is not the accepted quote for this job")
	ErrChargeAlreadySettled  = errors.New("a settled payment already exists for this charge")
	ErrDepositNotSettled     = errors.New("deposit payment is not settled")
	ErrPaymentNotSettled     = errors.New("payment is not in a settled state")
	ErrNotAdmin              = errors.New("caller is not an admin")
	ErrGatewayUnavailable    = errors.New("payment gateway request failed")
	ErrInvalidPaymentInput   = errors.New("invalid payment input")
	ErrTradespersonNotLinked = errors.New("tradesperson has no gateway account")
)

const defaultDepositBps = 2000

// GatewayEvent is a settlement callback delivered by the webhook receiver.
// Outcome is either "succeeded" or "failed".

type GatewayEvent struct {
	EventID   string `json:"event_id"`
	Reference string `json:"reference"`
	Outcome   string `json:"outcome"`

	// ProviderPaymentID is the gateway's id for the settled charge. Refunds
	// are issued against it, so a success event replaces the checkout
	// preference id we stored at creation time.
	ProviderPaymentID string `json:"provider_payment_id,omitempty"`
}

const (
	OutcomeSucceeded = "succeeded"
	OutcomeFailed    = "failed"
)

// IPaymentUseCase bridges the job ledger to the payment gateway. Charge
// creation and settlement are deliberately split: the caller who initiates a
// charge only ever receives a checkout handle, and the ledger advances
// solely on reconciled settlement events.

type IPaymentUseCase interface {
	InitiateDeposit(ctx context.Context, jobID, quoteID, actingCustomerID string) (interfaces.Checkout, error)
	InitiateFinalPayment(ctx context.Context, jobID, quoteID, actingCustomerID string) (interfaces.Checkout, error)
	Reconcile(ctx context.Context, ev GatewayEvent) error
	Refund(ctx context.Context, paymentID, actingUserID string, role entities.Role) error

	GetPayment(ctx context.Context, paymentID string) (entities.Payment, error)
	ListPaymentsByJob(ctx context.Context, jobID string) ([]entities.Payment, error)
}

type PaymentUseCase struct {
	payments interfaces.IPaymentRepository
	events   interfaces.IProcessedEventRepository
	jobs     interfaces.IJobRepository
	quotes   interfaces.IQuoteRepository
	accounts interfaces.IAccountDirectory
	gateway  interfaces.IPaymentGateway
	ledger   IJobUseCase
	schedule fees.Schedule
	currency string
}

var _ IPaymentUseCase = (*PaymentUseCase)(nil)

func NewPaymentUseCase(
	payments interfaces.IPaymentRepository,
	events interfaces.IProcessedEventRepository,
	jobs interfaces.IJobRepository,
	quotes interfaces.IQuoteRepository,
	accounts interfaces.IAccountDirectory,
	gateway interfaces.IPaymentGateway,
	ledger IJobUseCase,
	schedule fees.Schedule,
) *PaymentUseCase {
	return &PaymentUseCase{
		payments: payments,
		events:   events,
		jobs:     jobs,
		quotes:   quotes,
		accounts: accounts,
		gateway:  gateway,
		ledger:   ledger,
		schedule: schedule,
		currency: currencyFromEnv(),
	}
}

func (u *PaymentUseCase) InitiateDeposit(ctx context.Context, jobID, quoteID, actingCustomerID string) (interfaces.Checkout, error) {
	return u.initiate(ctx, entities.PaymentTypeDeposit, jobID, quoteID, actingCustomerID)
}

func (u *PaymentUseCase) InitiateFinalPayment(ctx context.Context, jobID, quoteID, actingCustomerID string) (interfaces.Checkout, error) {
	return u.initiate(ctx, entities.PaymentTypeFinal, jobID, quoteID, actingCustomerID)
}

func (u *PaymentUseCase) initiate(ctx context.Context, ptype entities.PaymentType, jobID, quoteID, actingCustomerID string) (interfaces.Checkout, error) {
	jobID = strings.TrimSpace(jobID)
	quoteID = strings.TrimSpace(quoteID)
	actingCustomerID = strings.TrimSpace(actingCustomerID)
	if jobID == "" || quoteID == "" || actingCustomerID == "" {
		return interfaces.Checkout{}, ErrInvalidPaymentInput
	}
	log.Printf("[payment][usecase] initiate start type=%s job_id=%s quote_id=%s", ptype, jobID, quoteID)

	j, err := u.jobs.GetByID(ctx, jobID)
	if err != nil {
		return interfaces.Checkout{}, err
	}
	if j.ID == "" {
		return interfaces.Checkout{}, ErrJobNotFound
	}
	if j.CustomerID != actingCustomerID {
		return interfaces.Checkout{}, ErrNotJobOwner
	}

	q, err := u.quotes.GetByID(ctx, quoteID)
	if err != nil {
		return interfaces.Checkout{}, err
	}
	if q.ID == "" || q.JobID != jobID {
		return interfaces.Checkout{}, ErrQuoteNotFound
	}
	if q.Status != entities.QuoteStatusAccepted || j.AcceptedQuoteID != quoteID {
		return interfaces.Checkout{}, ErrQuoteNotAccepted
	}

	var amount int64
	switch ptype {
	case entities.PaymentTypeDeposit:
		if j.Status != entities.JobStatusAssigned {
			return interfaces.Checkout{}, ErrJobNotAssigned
		}
		amount = depositAmount(q)
	case entities.PaymentTypeFinal:
		// A job cancelled after deposit settlement never reaches
		// in_progress again, so the final charge is rejected here.
		if j.Status != entities.JobStatusInProgress {
			return interfaces.Checkout{}, ErrJobNotInProgress
		}
		deposit, err := u.settledPayment(ctx, entities.PaymentTypeDeposit, jobID, quoteID)
		if err != nil {
			return interfaces.Checkout{}, err
		}
		if deposit.ID == "" {
			return interfaces.Checkout{}, ErrDepositNotSettled
		}
		amount = q.PriceMinor - deposit.AmountMinor
		if amount == 0 {
			// The deposit covered the full quoted price; there is nothing
			// left to charge and no gateway round trip to wait for.
			return u.settleZeroBalance(ctx, jobID, quoteID)
		}
	default:
		return interfaces.Checkout{}, ErrInvalidPaymentInput
	}
	if amount <= 0 {
		return interfaces.Checkout{}, ErrInvalidPaymentInput
	}

	// Duplicate charge attempts are rejected once a settled payment exists.
	settled, err := u.settledPayment(ctx, ptype, jobID, quoteID)
	if err != nil {
		return interfaces.Checkout{}, err
	}
	if settled.ID != "" {
		log.Printf("[payment][usecase] initiate rejected, already settled type=%s job_id=%s quote_id=%s payment_id=%s", ptype, jobID, quoteID, settled.ID)
		return interfaces.Checkout{}, ErrChargeAlreadySettled
	}

	// Tier is read through at charge time: a subscription change affects
	// this charge, not settled history.
	account, err := u.accounts.GetByID(ctx, q.TradespersonID)
	if err != nil {
		return interfaces.Checkout{}, err
	}
	if account.ID == "" {
		return interfaces.Checkout{}, ErrTradespersonNotLinked
	}
	fee := u.schedule.PlatformFee(amount, account.Tier)

	// The payment row is written before the gateway call so no Job/Quote
	// lock spans the network round trip; only reconcile advances the
	// ledger.
	now := time.Now().UTC()
	p := entities.Payment{
		ID:               uuid.NewString(),
		JobID:            jobID,
		QuoteID:          quoteID,
		Type:             ptype,
		AmountMinor:      amount,
		PlatformFeeMinor: fee,
		Reference:        entities.MakeReference(ptype, jobID, quoteID),
		Status:           entities.PaymentStatusAuthorized,
		CreatedAt:        now,
		UpdatedAt:        now,
	}
	if _, err := u.payments.Create(ctx, p); err != nil {
		return interfaces.Checkout{}, err
	}

	checkout, err := u.gateway.CreateCharge(ctx, interfaces.ChargeRequest{
		AmountMinor:        amount,
		PlatformFeeMinor:   fee,
		Reference:          p.Reference,
		Description:        fmt.Sprintf("%s payment for job %s", ptype, jobID),
		DestinationAccount: account.GatewayAccountID,
		Currency:           u.currency,
	})
	if err != nil {
		// Keep the row in a clearly-failed state; a late success event for
		// the same reference can still settle it.
		if _, ferr := u.payments.MarkFailed(ctx, p.ID, err.Error()); ferr != nil {
			log.Printf("[payment][usecase] mark-failed error payment_id=%s err=%v", p.ID, ferr)
		}
		log.Printf("[payment][usecase] gateway charge failed type=%s job_id=%s payment_id=%s err=%v", ptype, jobID, p.ID, err)
		return interfaces.Checkout{}, fmt.Errorf("%w: %v", ErrGatewayUnavailable, err)
	}
	if _, err := u.payments.SetGatewayReference(ctx, p.ID, checkout.PreferenceID); err != nil {
		log.Printf("[payment][usecase] set gateway reference failed payment_id=%s err=%v", p.ID, err)
	}

	telemetry.ChargesInitiated.Inc()
	log.Printf("[payment][usecase] initiate success type=%s job_id=%s payment_id=%s amount_minor=%d fee_minor=%d tier=%s", ptype, jobID, p.ID, amount, fee, account.Tier)
	return checkout, nil
}

// Reconcile is the sole entry point for gateway callbacks. Idempotence is
// decided by the persisted event record, and business-logic mismatches are
// logged and swallowed: the webhook transport cannot interpret anything
// beyond "retry", so only infrastructure failures propagate.
func (u *PaymentUseCase) Reconcile(ctx context.Context, ev GatewayEvent) error {
	ev.EventID = strings.TrimSpace(ev.EventID)
	ev.Reference = strings.TrimSpace(ev.Reference)
	if ev.EventID == "" || ev.Reference == "" {
		log.Printf("[payment][usecase] reconcile dropped, malformed event event_id=%q reference=%q", ev.EventID, ev.Reference)
		return nil
	}

	fresh, err := u.events.Record(ctx, entities.ProcessedEvent{
		EventID:    ev.EventID,
		Reference:  ev.Reference,
		Outcome:    ev.Outcome,
		ReceivedAt: time.Now().UTC(),
	})
	if err != nil {
		return err
	}
	if !fresh {
		telemetry.ReconcileDuplicates.Inc()
		log.Printf("[payment][usecase] reconcile duplicate event_id=%s", ev.EventID)
		return nil
	}

	ptype, jobID, _, err := entities.ParseReference(ev.Reference)
	if err != nil {
		log.Printf("[payment][usecase] reconcile dropped, bad reference event_id=%s err=%v", ev.EventID, err)
		return nil
	}

	candidates, err := u.payments.ListByReference(ctx, ev.Reference)
	if err != nil {
		return u.reconcileFailed(ctx, ev.EventID, err)
	}
	p := pickReconcileTarget(candidates)
	if p.ID == "" {
		log.Printf("[payment][usecase] reconcile dropped, unknown reference event_id=%s reference=%s", ev.EventID, ev.Reference)
		return nil
	}
	if p.Status.Settled() || p.Status == entities.PaymentStatusRefunded {
		// Out-of-order or redundant delivery for an already-terminal
		// payment; never un-settle.
		log.Printf("[payment][usecase] reconcile no-op, payment terminal event_id=%s payment_id=%s status=%s", ev.EventID, p.ID, p.Status)
		return nil
	}

	switch ev.Outcome {
	case OutcomeFailed:
		updated, err := u.payments.TransitionStatus(ctx, p.ID, entities.PaymentStatusAuthorized, entities.PaymentStatusCanceled)
		if err != nil {
			return u.reconcileFailed(ctx, ev.EventID, err)
		}
		if updated.ID == "" {
			log.Printf("[payment][usecase] reconcile failure no-op, payment moved on event_id=%s payment_id=%s", ev.EventID, p.ID)
			return nil
		}
		// Job state is left unchanged; the customer may retry the charge.
		log.Printf("[payment][usecase] reconcile failure applied event_id=%s payment_id=%s", ev.EventID, p.ID)
		return nil

	case OutcomeSucceeded:
		updated, err := u.payments.TransitionStatus(ctx, p.ID, entities.PaymentStatusAuthorized, entities.PaymentStatusCaptured)
		if err != nil {
			return u.reconcileFailed(ctx, ev.EventID, err)
		}
		if updated.ID == "" {
			// Late success after a creation-time failure flipped the row.
			updated, err = u.payments.TransitionStatus(ctx, p.ID, entities.PaymentStatusCanceled, entities.PaymentStatusCaptured)
			if err != nil {
				return u.reconcileFailed(ctx, ev.EventID, err)
			}
			if updated.ID == "" {
				log.Printf("[payment][usecase] reconcile success no-op, payment moved on event_id=%s payment_id=%s", ev.EventID, p.ID)
				return nil
			}
		}
		if ev.ProviderPaymentID != "" {
			if _, err := u.payments.SetGatewayReference(ctx, p.ID, ev.ProviderPaymentID); err != nil {
				log.Printf("[payment][usecase] store provider payment id failed payment_id=%s err=%v", p.ID, err)
			}
		}

		switch ptype {
		case entities.PaymentTypeDeposit:
			if _, err := u.ledger.StartProgress(ctx, jobID); err != nil {
				logLedgerAdvance(ev, jobID, "in_progress", err)
			}
		case entities.PaymentTypeFinal:
			if _, err := u.ledger.CompleteJob(ctx, jobID); err != nil {
				logLedgerAdvance(ev, jobID, "completed", err)
			}
		}
		telemetry.ReconcileApplied.Inc()
		log.Printf("[payment][usecase] reconcile success applied event_id=%s payment_id=%s type=%s job_id=%s", ev.EventID, p.ID, ptype, jobID)
		return nil

	default:
		log.Printf("[payment][usecase] reconcile dropped, unknown outcome event_id=%s outcome=%q", ev.EventID, ev.Outcome)
		return nil
	}
}

func (u *PaymentUseCase) Refund(ctx context.Context, paymentID, actingUserID string, role entities.Role) error {
	paymentID = strings.TrimSpace(paymentID)
	if paymentID == "" {
		return ErrInvalidPaymentInput
	}
	if role != entities.RoleAdmin {
		return ErrNotAdmin
	}

	p, err := u.payments.GetByID(ctx, paymentID)
	if err != nil {
		return err
	}
	if p.ID == "" {
		return ErrPaymentNotFound
	}
	if !p.Status.Settled() {
		return ErrPaymentNotSettled
	}

	if err := u.gateway.RefundCharge(ctx, p.GatewayReference); err != nil {
		log.Printf("[payment][usecase] gateway refund failed payment_id=%s err=%v", paymentID, err)
		return fmt.Errorf("%w: %v", ErrGatewayUnavailable, err)
	}
	if _, err := u.payments.TransitionStatus(ctx, paymentID, p.Status, entities.PaymentStatusRefunded); err != nil {
		return err
	}
	telemetry.RefundsIssued.Inc()
	// Job status is deliberately left alone; reversing the job is a
	// separate admin decision.
	log.Printf("[payment][usecase] refund issued payment_id=%s by=%s amount_minor=%d", paymentID, actingUserID, p.AmountMinor)
	return nil
}

func (u *PaymentUseCase) GetPayment(ctx context.Context, paymentID string) (entities.Payment, error) {
	paymentID = strings.TrimSpace(paymentID)
	if paymentID == "" {
		return entities.Payment{}, ErrInvalidPaymentInput
	}
	p, err := u.payments.GetByID(ctx, paymentID)
	if err != nil {
		return entities.Payment{}, err
	}
	if p.ID == "" {
		return entities.Payment{}, ErrPaymentNotFound
	}
	return p, nil
}

func (u *PaymentUseCase) ListPaymentsByJob(ctx context.Context, jobID string) ([]entities.Payment, error) {
	jobID = strings.TrimSpace(jobID)
	if jobID == "" {
		return nil, ErrInvalidPaymentInput
	}
	return u.payments.ListByJobID(ctx, jobID)
}

// reconcileFailed rolls back the dedup record after an infrastructure
// failure. The webhook answers 5xx for these, and without the rollback the
// provider's redelivery would hit the record and be dropped as a duplicate,
// losing the settlement.
func (u *PaymentUseCase) reconcileFailed(ctx context.Context, eventID string, err error) error {
	if derr := u.events.Delete(ctx, eventID); derr != nil {
		log.Printf("[payment][usecase] dedup rollback failed event_id=%s err=%v", eventID, derr)
	}
	return err
}

// settleZeroBalance closes out the final payment when the settled deposit
// already equals the quoted price. A zero-amount settled row records the
// fact for the payment history and the ledger advances to completed
// directly, since no settlement callback will ever arrive for it.
func (u *PaymentUseCase) settleZeroBalance(ctx context.Context, jobID, quoteID string) (interfaces.Checkout, error) {
	settled, err := u.settledPayment(ctx, entities.PaymentTypeFinal, jobID, quoteID)
	if err != nil {
		return interfaces.Checkout{}, err
	}
	if settled.ID != "" {
		return interfaces.Checkout{}, ErrChargeAlreadySettled
	}

	now := time.Now().UTC()
	p := entities.Payment{
		ID:          uuid.NewString(),
		JobID:       jobID,
		QuoteID:     quoteID,
		Type:        entities.PaymentTypeFinal,
		AmountMinor: 0,
		Reference:   entities.MakeReference(entities.PaymentTypeFinal, jobID, quoteID),
		Status:      entities.PaymentStatusSucceeded,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if _, err := u.payments.Create(ctx, p); err != nil {
		return interfaces.Checkout{}, err
	}
	if _, err := u.ledger.CompleteJob(ctx, jobID); err != nil {
		log.Printf("[payment][usecase] ledger advance skipped job_id=%s target=completed err=%v", jobID, err)
	}
	log.Printf("[payment][usecase] zero balance settled job_id=%s quote_id=%s payment_id=%s", jobID, quoteID, p.ID)
	return interfaces.Checkout{}, nil
}

func (u *PaymentUseCase) settledPayment(ctx context.Context, ptype entities.PaymentType, jobID, quoteID string) (entities.Payment, error) {
	candidates, err := u.payments.ListByReference(ctx, entities.MakeReference(ptype, jobID, quoteID))
	if err != nil {
		return entities.Payment{}, err
	}
	for _, p := range candidates {
		if p.Status.Settled() {
			return p, nil
		}
	}
	return entities.Payment{}, nil
}

// pickReconcileTarget chooses which payment row a callback applies to:
// a terminal row wins (so redeliveries no-op), otherwise the newest row for
// the reference (a retry after a failed creation supersedes the failed row).
func pickReconcileTarget(candidates []entities.Payment) entities.Payment {
	var target entities.Payment
	for _, p := range candidates {
		if p.Status.Settled() || p.Status == entities.PaymentStatusRefunded {
			return p
		}
		if target.ID == "" || p.CreatedAt.After(target.CreatedAt) {
			target = p
		}
	}
	return target
}

// depositAmount resolves the staged deposit for a quote: the tradesperson's
// stated deposit, or the platform default fraction of the price.
func depositAmount(q entities.Quote) int64 {
	if q.DepositMinor > 0 {
		return q.DepositMinor
	}
	bps := int64(defaultDepositBps)
	if v := os.Getenv("DEPOSIT_DEFAULT_BPS"); v != "" {
		if n, err := strconv.ParseInt(v, 10, 64); err == nil && n > 0 && n <= 10000 {
			bps = n
		}
	}
	amount := q.PriceMinor * bps / 10000
	if amount <= 0 {
		amount = q.PriceMinor
	}
	return amount
}

func logLedgerAdvance(ev GatewayEvent, jobID, target string, err error) {
	log.Printf("[payment][usecase] ledger advance skipped event_id=%s job_id=%s target=%s err=%v", ev.EventID, jobID, target, err)
}

func currencyFromEnv() string {
	if v := strings.TrimSpace(os.Getenv("PLATFORM_CURRENCY")); v != "" {
		return v
	}
	return "GBP"
}
