package offer

import (
	"errors"
	"strings"
	"time"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/pkg/errs"
	"marketplace/internal/pkg/guard"
)

const (
	maxItems             = 50
	maxTitleLength       = 200
	maxDescriptionLength = 2000
)

// Domain errors for offer operations.
var (
	// ErrOfferIsNotConstructed is returned when an Offer instance was not
	// created through NewOffer or RestoreOffer.
	ErrOfferIsNotConstructed = errors.New("Offer must be created via NewOffer constructor")
	// ErrTitleRequired is returned when the title is blank.
	ErrTitleRequired = errs.NewDomainRuleViolationError("offer title is required")
	// ErrTitleTooLong is returned when a title exceeds the length cap.
	ErrTitleTooLong = errs.NewDomainRuleViolationError("offer title cannot exceed 200 characters")
	// ErrDescriptionTooLong is returned when a description exceeds the length cap.
	ErrDescriptionTooLong = errs.NewDomainRuleViolationError(
		"offer description cannot exceed 2000 characters")
	// ErrInvalidActiveWindow is returned when the window start is not before
	// its end.
	ErrInvalidActiveWindow = errs.NewDomainRuleViolationError(
		"active window start must be before its end")
	// ErrOfferNotDraft is returned when mutating items outside Draft.
	ErrOfferNotDraft = errs.NewDomainRuleViolationError("offer items can only change while draft")
	// ErrOfferHasNoItems is returned when activating an offer without items.
	ErrOfferHasNoItems = errs.NewDomainRuleViolationError("cannot activate offer without items")
	// ErrActiveWindowClosed is returned when activating an offer whose window
	// already ended.
	ErrActiveWindowClosed = errs.NewDomainRuleViolationError("active window has already ended")
	// ErrOfferIsFull is returned when the item cap is reached.
	ErrOfferIsFull = errs.NewDomainRuleViolationError("cannot add more than 50 items to offer")
	// ErrDuplicateProductItem is returned when bundling a product twice.
	ErrDuplicateProductItem = errs.NewDomainRuleViolationError("offer already has this product")
	// ErrProductNotInOffer is returned when operating on a product the offer
	// does not bundle.
	ErrProductNotInOffer = errs.NewDomainRuleViolationError("product not found in offer")
)

// Offer is the aggregate root for a time-bounded promotional bundle.
//
// Like quote requests, expiry has two signals: IsExpired compares the clock
// against ActiveTo and is authoritative; Status == Expired is the formal
// projection written by the sweep. Items are frozen once the offer leaves
// Draft.
type Offer struct {
	kernel.Entity

	title         string
	titleAr       string
	description   string
	descriptionAr string
	activeFrom    time.Time
	activeTo      time.Time
	status        Status
	items         []*OfferItem

	guard guard.ConstructorGuard
}

// NewOffer opens a draft offer. The Arabic title and descriptions are
// optional; the active window must satisfy from < to.
func NewOffer(title, titleAr, description, descriptionAr string, activeFrom, activeTo time.Time) (*Offer, error) {
	title = strings.TrimSpace(title)
	if title == "" {
		return nil, ErrTitleRequired
	}
	if len(title) > maxTitleLength {
		return nil, ErrTitleTooLong
	}
	titleAr = strings.TrimSpace(titleAr)
	if len(titleAr) > maxTitleLength {
		return nil, ErrTitleTooLong
	}
	description = strings.TrimSpace(description)
	if len(description) > maxDescriptionLength {
		return nil, ErrDescriptionTooLong
	}
	descriptionAr = strings.TrimSpace(descriptionAr)
	if len(descriptionAr) > maxDescriptionLength {
		return nil, ErrDescriptionTooLong
	}
	if !activeFrom.Before(activeTo) {
		return nil, ErrInvalidActiveWindow
	}

	o := &Offer{
		Entity:        kernel.NewEntity(),
		title:         title,
		titleAr:       titleAr,
		description:   description,
		descriptionAr: descriptionAr,
		activeFrom:    activeFrom.UTC(),
		activeTo:      activeTo.UTC(),
		status:        Draft,
		guard:         guard.NewConstructorGuard(),
	}
	o.RecordEvent(CreatedEvent{EventBase: kernel.NewEventBase(), OfferID: o.ID(), Title: title})
	return o, nil
}

// RestoreOffer reconstructs an offer from persistence, including its items.
// No events are recorded.
func RestoreOffer(
	id kernel.UUID,
	createdAt time.Time,
	updatedAt *time.Time,
	concurrencyToken string,
	title, titleAr, description, descriptionAr string,
	activeFrom, activeTo time.Time,
	status Status,
	items []*OfferItem,
) (*Offer, error) {
	entity, err := kernel.RestoreEntity(id, createdAt, updatedAt, concurrencyToken)
	if err != nil {
		return nil, err
	}
	if err = status.Validate(); err != nil {
		return nil, err
	}
	if len(items) > maxItems {
		return nil, ErrOfferIsFull
	}

	return &Offer{
		Entity:        entity,
		title:         title,
		titleAr:       titleAr,
		description:   description,
		descriptionAr: descriptionAr,
		activeFrom:    activeFrom,
		activeTo:      activeTo,
		status:        status,
		items:         items,
		guard:         guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the Offer was created through a constructor.
func (o *Offer) Validate() error {
	if o == nil {
		return ErrOfferIsNotConstructed
	}
	return o.guard.Validate(ErrOfferIsNotConstructed)
}

// Title returns the offer title.
func (o *Offer) Title() string {
	return o.title
}

// TitleAr returns the Arabic title, empty if none.
func (o *Offer) TitleAr() string {
	return o.titleAr
}

// Description returns the offer description, empty if none.
func (o *Offer) Description() string {
	return o.description
}

// DescriptionAr returns the Arabic description, empty if none.
func (o *Offer) DescriptionAr() string {
	return o.descriptionAr
}

// ActiveFrom returns the start of the active window.
func (o *Offer) ActiveFrom() time.Time {
	return o.activeFrom
}

// ActiveTo returns the end of the active window.
func (o *Offer) ActiveTo() time.Time {
	return o.activeTo
}

// Status returns the current lifecycle status.
func (o *Offer) Status() Status {
	return o.status
}

// Items returns a copy of the offer's items in insertion order.
func (o *Offer) Items() []*OfferItem {
	items := make([]*OfferItem, len(o.items))
	copy(items, o.items)
	return items
}

// Item returns the item for the given product, nil if absent.
func (o *Offer) Item(productID kernel.UUID) *OfferItem {
	return o.findItem(productID)
}

// IsActive reports whether the offer is published and inside its window at
// the given moment.
func (o *Offer) IsActive(now time.Time) bool {
	return o.status == Active && !now.Before(o.activeFrom) && now.Before(o.activeTo)
}

// IsExpired reports whether the active window has ended at the given moment.
// This clock comparison is authoritative regardless of Status.
func (o *Offer) IsExpired(now time.Time) bool {
	return !now.Before(o.activeTo)
}

// AddItem bundles a product into a draft offer.
func (o *Offer) AddItem(productID kernel.UUID, quantity int) error {
	if o.status != Draft {
		return ErrOfferNotDraft
	}
	if err := productID.Validate(); err != nil {
		return err
	}
	if o.findItem(productID) != nil {
		return ErrDuplicateProductItem
	}
	if len(o.items) >= maxItems {
		return ErrOfferIsFull
	}

	item, err := newOfferItem(o.ID(), productID, quantity)
	if err != nil {
		return err
	}

	o.items = append(o.items, item)
	o.MarkModified()
	return nil
}

// UpdateItemQuantity replaces the quantity of an existing item of a draft
// offer.
func (o *Offer) UpdateItemQuantity(productID kernel.UUID, quantity int) error {
	if o.status != Draft {
		return ErrOfferNotDraft
	}

	item := o.findItem(productID)
	if item == nil {
		return ErrProductNotInOffer
	}

	if err := item.updateQuantity(quantity); err != nil {
		return err
	}

	o.MarkModified()
	return nil
}

// RemoveItem drops a product from a draft offer.
func (o *Offer) RemoveItem(productID kernel.UUID) error {
	if o.status != Draft {
		return ErrOfferNotDraft
	}

	for idx, item := range o.items {
		if item.ProductID().IsEqual(productID) {
			o.items = append(o.items[:idx], o.items[idx+1:]...)
			o.MarkModified()
			return nil
		}
	}

	return ErrProductNotInOffer
}

// Activate publishes a draft offer. It requires at least one item and an
// active window that has not already ended.
func (o *Offer) Activate() error {
	status, err := o.status.Activate()
	if err != nil {
		return err
	}
	if len(o.items) == 0 {
		return ErrOfferHasNoItems
	}
	if o.IsExpired(time.Now().UTC()) {
		return ErrActiveWindowClosed
	}

	o.status = status
	o.MarkModified()
	o.RecordEvent(ActivatedEvent{EventBase: kernel.NewEventBase(), OfferID: o.ID(), ActiveTo: o.activeTo})
	return nil
}

// Expire formalizes the end of the active window. Expiring an already
// expired offer is a no-op.
func (o *Offer) Expire() error {
	if o.status == Expired {
		return nil
	}

	status, err := o.status.Expire()
	if err != nil {
		return err
	}

	o.status = status
	o.MarkModified()
	o.RecordEvent(ExpiredEvent{EventBase: kernel.NewEventBase(), OfferID: o.ID()})
	return nil
}

// Archive withdraws the offer from any state. Archiving an already archived
// offer is a no-op.
func (o *Offer) Archive() error {
	if o.status == Archived {
		return nil
	}

	status, err := o.status.Archive()
	if err != nil {
		return err
	}

	o.status = status
	o.MarkModified()
	o.RecordEvent(ArchivedEvent{EventBase: kernel.NewEventBase(), OfferID: o.ID()})
	return nil
}

func (o *Offer) findItem(productID kernel.UUID) *OfferItem {
	for _, item := range o.items {
		if item.ProductID().IsEqual(productID) {
			return item
		}
	}
	return nil
}
