package stats

import "testing"

func TestComputeGridLayout(t *testing.T) {
	t.Run("floors at two rows", func(t *testing.T) {
		for _, n := range []int{0, 1, 2, 3} {
			layout := ComputeGridLayout(n, 3)
			if layout.Rows != 2 {
				t.Errorf("n=%d: expected 2 rows, got %d", n, layout.Rows)
			}
		}
	})

	t.Run("always fits all items", func(t *testing.T) {
		for n := 0; n <= 40; n++ {
			layout := ComputeGridLayout(n, 3)
			if layout.Rows < 2 {
				t.Errorf("n=%d: rows %d below floor", n, layout.Rows)
			}
			if layout.Cells() < n {
				t.Errorf("n=%d: %d cells cannot hold %d items", n, layout.Cells(), n)
			}
		}
	})

	t.Run("no excess rows above the floor", func(t *testing.T) {
		layout := ComputeGridLayout(7, 3)
		if layout.Rows != 3 || layout.Cols != 3 {
			t.Errorf("expected 3x3 for 7 items, got %dx%d", layout.Rows, layout.Cols)
		}
	})

	t.Run("invalid width falls back to default", func(t *testing.T) {
		layout := ComputeGridLayout(5, 0)
		if layout.Cols != DefaultColumnsPerRow {
			t.Errorf("expected default width %d, got %d", DefaultColumnsPerRow, layout.Cols)
		}
	})
}
