package repository

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ecommerce-store/internal/model"
)

func TestReviewRatingBounds(t *testing.T) {
	ctx := context.Background()
	db := newTestDB(t)
	products := NewProductRepository(db)
	reviews := NewReviewRepository(db)

	product := &model.Product{SKU: "P-1", Name: "Widget", Price: decimal.Zero}
	require.NoError(t, products.Create(ctx, product))

	for _, rating := range []int{0, 6} {
		err := reviews.Create(ctx, &model.Review{ProductID: product.ID, Rating: rating})
		assert.ErrorIs(t, err, ErrConstraint, "rating %d", rating)
	}
	for _, rating := range []int{1, 5} {
		err := reviews.Create(ctx, &model.Review{ProductID: product.ID, Rating: rating})
		assert.NoError(t, err, "rating %d", rating)
	}
}

func TestReviewReferences(t *testing.T) {
	ctx := context.Background()
	db := newTestDB(t)
	customers := NewCustomerRepository(db)
	products := NewProductRepository(db)
	reviews := NewReviewRepository(db)

	err := reviews.Create(ctx, &model.Review{ProductID: 42, Rating: 3})
	require.ErrorIs(t, err, ErrReference)

	product := &model.Product{SKU: "P-1", Name: "Widget", Price: decimal.Zero}
	require.NoError(t, products.Create(ctx, product))

	err = reviews.Create(ctx, &model.Review{ProductID: product.ID, CustomerID: uintPtr(42), Rating: 3})
	require.ErrorIs(t, err, ErrReference)

	// Anonymous reviews are fine.
	require.NoError(t, reviews.Create(ctx, &model.Review{ProductID: product.ID, Rating: 3}))

	customer := &model.Customer{Email: "a@x.com", PasswordHash: "h", Name: "A"}
	require.NoError(t, customers.Create(ctx, customer))
	require.NoError(t, reviews.Create(ctx, &model.Review{ProductID: product.ID, CustomerID: &customer.ID, Rating: 5}))

	listed, err := reviews.ListByProduct(ctx, product.ID)
	require.NoError(t, err)
	assert.Len(t, listed, 2)
}

func TestReviewUpdate(t *testing.T) {
	ctx := context.Background()
	db := newTestDB(t)
	products := NewProductRepository(db)
	reviews := NewReviewRepository(db)

	product := &model.Product{SKU: "P-1", Name: "Widget", Price: decimal.Zero}
	require.NoError(t, products.Create(ctx, product))
	review := &model.Review{ProductID: product.ID, Rating: 2, Title: strPtr("Meh")}
	require.NoError(t, reviews.Create(ctx, review))

	updated, err := reviews.Update(ctx, review.ID, ReviewUpdate{Rating: intPtr(4), Body: strPtr("Grew on me.")})
	require.NoError(t, err)
	assert.Equal(t, 4, updated.Rating)
	require.NotNil(t, updated.Body)

	updated, err = reviews.Update(ctx, review.ID, ReviewUpdate{ClearTitle: true, ClearBody: true})
	require.NoError(t, err)
	assert.Nil(t, updated.Title)
	assert.Nil(t, updated.Body)

	_, err = reviews.Update(ctx, review.ID, ReviewUpdate{Rating: intPtr(6)})
	assert.ErrorIs(t, err, ErrConstraint)

	_, err = reviews.Update(ctx, 999, ReviewUpdate{Rating: intPtr(3)})
	assert.ErrorIs(t, err, ErrNotFound)
}
