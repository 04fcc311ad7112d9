package commands

import (
	"errors"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/pkg/guard"
)

var (
	ErrSubmitReviewCommandIsNotConstructed = errors.New(
		"SubmitReviewCommand must be created via NewSubmitReviewCommand constructor",
	)
)

// SubmitReviewCommand represents a buyer's review of a completed order,
// rating either the store or the driver.
type SubmitReviewCommand struct { //nolint:recvcheck //using for validation
	reviewID  kernel.UUID
	orderID   kernel.UUID
	subjectID kernel.UUID
	authorID  kernel.UUID
	rating    int
	comment   string

	guard guard.ConstructorGuard
}

// NewSubmitReviewCommand creates a command to submit a review.
// Rating bounds and comment rules are enforced by the review aggregate; the
// command only validates identifiers and carries the payload.
func NewSubmitReviewCommand(
	reviewID kernel.UUID,
	orderID kernel.UUID,
	subjectID kernel.UUID,
	authorID kernel.UUID,
	rating int,
	comment string,
) (SubmitReviewCommand, error) {
	reviewCommand := SubmitReviewCommand{
		rating:  rating,
		comment: comment,
		guard:   guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		reviewCommand.setReviewID(reviewID),
		reviewCommand.setOrderID(orderID),
		reviewCommand.setSubjectID(subjectID),
		reviewCommand.setAuthorID(authorID),
	); err != nil {
		return SubmitReviewCommand{}, err
	}

	return reviewCommand, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrSubmitReviewCommandIsNotConstructed if validation fails.
func (c SubmitReviewCommand) Validate() error {
	return c.guard.Validate(ErrSubmitReviewCommandIsNotConstructed)
}

// ReviewID returns the identifier for the new review.
func (c SubmitReviewCommand) ReviewID() kernel.UUID {
	return c.reviewID
}

// OrderID returns the identifier of the reviewed order.
func (c SubmitReviewCommand) OrderID() kernel.UUID {
	return c.orderID
}

// SubjectID returns the identifier of the reviewed participant.
func (c SubmitReviewCommand) SubjectID() kernel.UUID {
	return c.subjectID
}

// AuthorID returns the identifier of the review's author.
func (c SubmitReviewCommand) AuthorID() kernel.UUID {
	return c.authorID
}

// Rating returns the submitted rating.
func (c SubmitReviewCommand) Rating() int {
	return c.rating
}

// Comment returns the submitted comment, possibly empty.
func (c SubmitReviewCommand) Comment() string {
	return c.comment
}

func (c *SubmitReviewCommand) setReviewID(reviewID kernel.UUID) error {
	if err := reviewID.Validate(); err != nil {
		return err
	}

	c.reviewID = reviewID
	return nil
}

func (c *SubmitReviewCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}

func (c *SubmitReviewCommand) setSubjectID(subjectID kernel.UUID) error {
	if err := subjectID.Validate(); err != nil {
		return err
	}

	c.subjectID = subjectID
	return nil
}

func (c *SubmitReviewCommand) setAuthorID(authorID kernel.UUID) error {
	if err := authorID.Validate(); err != nil {
		return err
	}

	c.authorID = authorID
	return nil
}
