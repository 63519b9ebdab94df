package rating

import (
	"testing"

	"github.com/bekbolotov/movie-catalog-api/internal/domain"
)

func ratingWithParent(id int, parentID int) *domain.Rating {
	r := &domain.Rating{ID: id}
	if parentID != 0 {
		r.ParentID = &parentID
	}
	return r
}

func TestThread(t *testing.T) {
	t.Run("builds two-level reply tree preserving order", func(t *testing.T) {
		ratings := []*domain.Rating{
			ratingWithParent(1, 0),
			ratingWithParent(2, 0),
			ratingWithParent(3, 1),
			ratingWithParent(4, 1),
			ratingWithParent(5, 3),
		}

		roots := Thread(ratings)

		if len(roots) != 2 {
			t.Fatalf("got %d roots, want 2", len(roots))
		}
		if roots[0].ID != 1 || roots[1].ID != 2 {
			t.Errorf("root order = [%d %d], want [1 2]", roots[0].ID, roots[1].ID)
		}
		if len(roots[0].Replies) != 2 {
			t.Fatalf("got %d replies under rating 1, want 2", len(roots[0].Replies))
		}
		if roots[0].Replies[0].ID != 3 || roots[0].Replies[1].ID != 4 {
			t.Errorf("reply order = [%d %d], want [3 4]",
				roots[0].Replies[0].ID, roots[0].Replies[1].ID)
		}
		if len(roots[0].Replies[0].Replies) != 1 || roots[0].Replies[0].Replies[0].ID != 5 {
			t.Errorf("rating 5 not nested under rating 3")
		}
	})

	t.Run("rating with missing parent becomes top-level", func(t *testing.T) {
		ratings := []*domain.Rating{
			ratingWithParent(1, 0),
			ratingWithParent(2, 99),
		}

		roots := Thread(ratings)

		if len(roots) != 2 {
			t.Fatalf("got %d roots, want 2", len(roots))
		}
	})

	t.Run("nesting beyond the depth limit is cut off", func(t *testing.T) {
		var ratings []*domain.Rating
		for i := 1; i <= MaxThreadDepth+10; i++ {
			ratings = append(ratings, ratingWithParent(i, i-1))
		}

		roots := Thread(ratings)

		if len(roots) != 1 {
			t.Fatalf("got %d roots, want 1", len(roots))
		}

		depth := 0
		for node := roots[0]; node != nil; {
			depth++
			if len(node.Replies) == 0 {
				node = nil
			} else {
				node = node.Replies[0]
			}
		}

		if depth != MaxThreadDepth {
			t.Errorf("thread depth = %d, want %d", depth, MaxThreadDepth)
		}
	})

	t.Run("empty input yields no roots", func(t *testing.T) {
		if roots := Thread(nil); len(roots) != 0 {
			t.Errorf("got %d roots, want 0", len(roots))
		}
	})
}
