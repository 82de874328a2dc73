package config

import (
	"errors"
	"testing"
)

func fixedSize(w, h int) SizeFunc {
	return func() (int, int, error) { return w, h, nil }
}

func TestResolvePlayfield(t *testing.T) {
	tests := []struct {
		name    string
		req     PlayfieldRequest
		size    SizeFunc
		want    Playfield
		wantErr error
	}{
		{
			name: "defaults",
			req:  PlayfieldRequest{Width: DefaultWidth, Height: DefaultHeight, CellWidth: 8},
			want: Playfield{Width: 104, Height: 30},
		},
		{
			name: "width rounded to whole bricks",
			req:  PlayfieldRequest{Width: 45, Height: 20, CellWidth: 8},
			want: Playfield{Width: 40, Height: 20},
		},
		{
			name:    "width too small",
			req:     PlayfieldRequest{Width: 10, Height: 30, CellWidth: 8},
			wantErr: ErrWidthTooSmall,
		},
		{
			name:    "height too small",
			req:     PlayfieldRequest{Width: 80, Height: 19, CellWidth: 8},
			wantErr: ErrHeightTooSmall,
		},
		{
			name: "fill uses terminal size unchanged",
			req:  PlayfieldRequest{Width: 10, Height: 5, Fill: true, CellWidth: 8},
			size: fixedSize(131, 41),
			want: Playfield{Width: 131, Height: 41},
		},
		{
			name:    "fill on a tiny terminal",
			req:     PlayfieldRequest{Fill: true, CellWidth: 8},
			size:    fixedSize(80, 12),
			wantErr: ErrHeightTooSmall,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got, err := ResolvePlayfield(tc.req, tc.size)
			if tc.wantErr != nil {
				if !errors.Is(err, tc.wantErr) {
					t.Fatalf("ResolvePlayfield() error = %v, expected %v", err, tc.wantErr)
				}
				return
			}
			if err != nil {
				t.Fatalf("ResolvePlayfield() failed: %v", err)
			}
			if got != tc.want {
				t.Errorf("ResolvePlayfield() = %+v, expected %+v", got, tc.want)
			}
		})
	}
}

func TestResolvePlayfieldFillError(t *testing.T) {
	failing := func() (int, int, error) { return 0, 0, errors.New("not a tty") }

	if _, err := ResolvePlayfield(PlayfieldRequest{Fill: true}, failing); err == nil {
		t.Error("ResolvePlayfield() should fail when the terminal size is unavailable")
	}
	if _, err := ResolvePlayfield(PlayfieldRequest{Fill: true}, nil); err == nil {
		t.Error("ResolvePlayfield() should fail without a size source")
	}
}
