package category_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mdelvaux/library-api/internal/domain/category"
)

type fakeCategoryRepo struct {
	categories map[uint]*category.Category
	nextID     uint
}

func newFakeCategoryRepo() *fakeCategoryRepo {
	return &fakeCategoryRepo{categories: make(map[uint]*category.Category), nextID: 1}
}

func (r *fakeCategoryRepo) Create(_ context.Context, c *category.Category) error {
	c.ID = r.nextID
	r.nextID++
	r.categories[c.ID] = c
	return nil
}

func (r *fakeCategoryRepo) FindByID(_ context.Context, id uint) (*category.Category, error) {
	c, ok := r.categories[id]
	if !ok {
		return nil, category.ErrCategoryNotFound
	}
	return c, nil
}

func (r *fakeCategoryRepo) FindByName(_ context.Context, name string) (*category.Category, error) {
	for _, c := range r.categories {
		if c.Name == name {
			return c, nil
		}
	}
	return nil, category.ErrCategoryNotFound
}

func (r *fakeCategoryRepo) FindAll(_ context.Context) ([]*category.Category, error) {
	out := make([]*category.Category, 0, len(r.categories))
	for _, c := range r.categories {
		out = append(out, c)
	}
	return out, nil
}

func (r *fakeCategoryRepo) Update(_ context.Context, c *category.Category) error {
	if _, ok := r.categories[c.ID]; !ok {
		return category.ErrCategoryNotFound
	}
	r.categories[c.ID] = c
	return nil
}

func (r *fakeCategoryRepo) Delete(_ context.Context, id uint) error {
	if _, ok := r.categories[id]; !ok {
		return category.ErrCategoryNotFound
	}
	delete(r.categories, id)
	return nil
}

func strPtr(s string) *string { return &s }

func TestCreateCategory(t *testing.T) {
	svc := category.NewService(newFakeCategoryRepo())

	c, err := svc.CreateCategory(context.Background(), "Science Fiction", "Speculative futures")
	require.NoError(t, err)
	assert.NotZero(t, c.ID)

	got, err := svc.GetCategoryByName(context.Background(), "Science Fiction")
	require.NoError(t, err)
	assert.Equal(t, c.ID, got.ID)
}

func TestCreateCategoryBlankName(t *testing.T) {
	svc := category.NewService(newFakeCategoryRepo())

	_, err := svc.CreateCategory(context.Background(), "   ", "blank")
	assert.ErrorIs(t, err, category.ErrInvalidName)
}

func TestCreateCategoryDuplicateName(t *testing.T) {
	svc := category.NewService(newFakeCategoryRepo())

	_, err := svc.CreateCategory(context.Background(), "Science Fiction", "")
	require.NoError(t, err)

	_, err = svc.CreateCategory(context.Background(), "Science Fiction", "again")
	assert.ErrorIs(t, err, category.ErrCategoryDuplicate)
}

func TestUpdateCategoryRename(t *testing.T) {
	svc := category.NewService(newFakeCategoryRepo())

	c, err := svc.CreateCategory(context.Background(), "Science Fiction", "")
	require.NoError(t, err)
	_, err = svc.CreateCategory(context.Background(), "Fantasy", "")
	require.NoError(t, err)

	// Renaming onto a taken name fails; a patch that only touches the
	// description never runs the uniqueness check.
	_, err = svc.UpdateCategory(context.Background(), c.ID, category.UpdateParams{Name: strPtr("Fantasy")})
	assert.ErrorIs(t, err, category.ErrCategoryDuplicate)

	updated, err := svc.UpdateCategory(context.Background(), c.ID, category.UpdateParams{
		Description: strPtr("Rockets and robots"),
	})
	require.NoError(t, err)
	assert.Equal(t, "Science Fiction", updated.Name)
	assert.Equal(t, "Rockets and robots", updated.Description)

	_, err = svc.UpdateCategory(context.Background(), c.ID, category.UpdateParams{Name: strPtr("SF")})
	assert.NoError(t, err)
}

func TestUpdateCategoryNotFound(t *testing.T) {
	svc := category.NewService(newFakeCategoryRepo())

	_, err := svc.UpdateCategory(context.Background(), 42, category.UpdateParams{})
	assert.ErrorIs(t, err, category.ErrCategoryNotFound)
}

func TestDeleteCategory(t *testing.T) {
	svc := category.NewService(newFakeCategoryRepo())

	c, err := svc.CreateCategory(context.Background(), "Science Fiction", "")
	require.NoError(t, err)

	require.NoError(t, svc.DeleteCategory(context.Background(), c.ID))
	assert.ErrorIs(t, svc.DeleteCategory(context.Background(), c.ID), category.ErrCategoryNotFound)
}
