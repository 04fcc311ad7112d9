package commands

import (
	"context"
	"errors"

	"marketplace/internal/core/domain/model/order"
	"marketplace/internal/core/domain/model/review"
)

var (
	// ErrOrderNotReviewable is returned when the order has not been
	// delivered yet.
	ErrOrderNotReviewable = errors.New("order can only be reviewed after delivery")

	// ErrReviewAuthorIsNotBuyer is returned when someone other than the
	// order's buyer submits a review.
	ErrReviewAuthorIsNotBuyer = errors.New("only the order's buyer can submit a review")

	// ErrReviewSubjectIsNotParticipant is returned when the review targets
	// neither the order's store nor its driver.
	ErrReviewSubjectIsNotParticipant = errors.New("review subject must be the order's store or driver")
)

// SubmitReviewCommandHandler handles review submission for delivered orders.
// The buyer may rate the store and the driver once each per order.
type SubmitReviewCommandHandler struct {
	uowFactory ReviewUoWFactory
}

// NewSubmitReviewCommandHandler creates a handler for review submission.
func NewSubmitReviewCommandHandler(uowFactory ReviewUoWFactory) SubmitReviewCommandHandler {
	return SubmitReviewCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the review submission.
// Verifies the order is delivered, the author is its buyer, and the subject
// is one of its participants, then persists the review. A duplicate
// submission fails with review.ErrAlreadyReviewed.
func (h *SubmitReviewCommandHandler) Handle(ctx context.Context, cmd SubmitReviewCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	aggregate, err := uow.OrderRepository().Get(ctx, cmd.OrderID())
	if err != nil {
		return err
	}

	if aggregate.Status() != order.Delivered {
		return ErrOrderNotReviewable
	}

	if !aggregate.BuyerID().IsEqual(cmd.AuthorID()) {
		return ErrReviewAuthorIsNotBuyer
	}

	if !h.isParticipant(aggregate, cmd) {
		return ErrReviewSubjectIsNotParticipant
	}

	newReview, err := review.NewReview(
		cmd.ReviewID(),
		cmd.OrderID(),
		cmd.SubjectID(),
		cmd.AuthorID(),
		cmd.Rating(),
		cmd.Comment(),
	)
	if err != nil {
		return err
	}

	if err = uow.ReviewRepository().Add(ctx, newReview); err != nil {
		return err
	}

	return uow.Commit(ctx)
}

func (h *SubmitReviewCommandHandler) isParticipant(aggregate *order.Order, cmd SubmitReviewCommand) bool {
	if aggregate.StoreID().IsEqual(cmd.SubjectID()) {
		return true
	}

	return aggregate.IsAssignedDriver(cmd.SubjectID())
}
