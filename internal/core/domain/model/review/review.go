// Package review provides the post-delivery review entity. Reviews are
// written exactly once per order and subject, and are immutable after
// creation; uniqueness is enforced by the persistence layer with the same
// exactly-once discipline the order lifecycle uses for its events.
package review

import (
	"errors"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/pkg/errs"
)

const (
	// RatingMin is the lowest accepted rating.
	RatingMin = 1
	// RatingMax is the highest accepted rating.
	RatingMax = 5
)

var (
	// ErrReviewIsNotConstructed is returned when a Review instance was not
	// created through the NewReview factory method.
	ErrReviewIsNotConstructed = errors.New("Review must be created via NewReview constructor")

	// ErrAlreadyReviewed is returned when a second review is submitted for the
	// same order and subject. Reviews are exactly-once.
	ErrAlreadyReviewed = errors.New("a review already exists for this order and subject")
)

// Review is one buyer-authored rating of a delivered order's subject
// (the driver, or a product). Immutable after creation.
type Review struct {
	id        kernel.UUID
	orderID   kernel.UUID
	subjectID kernel.UUID
	authorID  kernel.UUID
	rating    int
	comment   string

	isConstructed bool
}

// NewReview creates a validated Review.
//
// Parameters:
//   - id: Review identifier
//   - orderID: The delivered order being reviewed
//   - subjectID: What is being rated (driver or product)
//   - authorID: The buyer writing the review
//   - rating: Integer in [RatingMin..RatingMax]
//   - comment: Optional free text
func NewReview(
	id kernel.UUID,
	orderID kernel.UUID,
	subjectID kernel.UUID,
	authorID kernel.UUID,
	rating int,
	comment string,
) (*Review, error) {
	review := &Review{
		comment:       comment,
		isConstructed: true,
	}

	if err := errors.Join(
		review.setID(id),
		review.setOrderID(orderID),
		review.setSubjectID(subjectID),
		review.setAuthorID(authorID),
		review.setRating(rating),
	); err != nil {
		return nil, err
	}

	return review, nil
}

// Validate ensures the Review instance was properly constructed.
func (r *Review) Validate() error {
	if r == nil || !r.isConstructed {
		return ErrReviewIsNotConstructed
	}

	return nil
}

// ID returns the review identifier.
func (r *Review) ID() kernel.UUID {
	return r.id
}

// OrderID returns the reviewed order.
func (r *Review) OrderID() kernel.UUID {
	return r.orderID
}

// SubjectID returns what is being rated.
func (r *Review) SubjectID() kernel.UUID {
	return r.subjectID
}

// AuthorID returns the buyer who wrote the review.
func (r *Review) AuthorID() kernel.UUID {
	return r.authorID
}

// Rating returns the integer rating in [RatingMin..RatingMax].
func (r *Review) Rating() int {
	return r.rating
}

// Comment returns the optional free text, empty when none was given.
func (r *Review) Comment() string {
	return r.comment
}

func (r *Review) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	r.id = id
	return nil
}

func (r *Review) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}
	r.orderID = orderID
	return nil
}

func (r *Review) setSubjectID(subjectID kernel.UUID) error {
	if err := subjectID.Validate(); err != nil {
		return err
	}
	r.subjectID = subjectID
	return nil
}

func (r *Review) setAuthorID(authorID kernel.UUID) error {
	if err := authorID.Validate(); err != nil {
		return err
	}
	r.authorID = authorID
	return nil
}

func (r *Review) setRating(rating int) error {
	if rating < RatingMin || rating > RatingMax {
		return errs.NewValueIsOutOfRangeError("rating", rating, RatingMin, RatingMax)
	}
	r.rating = rating
	return nil
}
