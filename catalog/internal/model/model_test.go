package model_test

import (
	"testing"

	"github.com/Astemirdum/library-catalog/catalog/internal/model"
	"github.com/stretchr/testify/require"
)

func TestReservation_Overlapping(t *testing.T) {
	t.Parallel()
	type rng struct {
		from, to int
		book     string
	}
	tests := []struct {
		name  string
		r     rng
		other rng
		want  bool
	}{
		{
			name:  "other book",
			r:     rng{1, 3, "Gatsby"},
			other: rng{3, 4, "Gatsbyy"},
			want:  false,
		},
		{
			name:  "disjoint, other later",
			r:     rng{1, 2, "Gatsby"},
			other: rng{3, 4, "Gatsby"},
			want:  false,
		},
		{
			name:  "disjoint, other earlier",
			r:     rng{5, 6, "Gatsby"},
			other: rng{1, 2, "Gatsby"},
			want:  false,
		},
		{
			name:  "touching end",
			r:     rng{1, 3, "Gatsby"},
			other: rng{3, 4, "Gatsby"},
			want:  true,
		},
		{
			name:  "contained",
			r:     rng{1, 10, "Gatsby"},
			other: rng{4, 5, "Gatsby"},
			want:  true,
		},
		{
			name:  "same range",
			r:     rng{2, 2, "Gatsby"},
			other: rng{2, 2, "Gatsby"},
			want:  true,
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			r := model.NewReservation(1, tt.r.from, tt.r.to, tt.r.book, "Carl")
			other := model.NewReservation(2, tt.other.from, tt.other.to, tt.other.book, "Richard")

			require.Equal(t, tt.want, r.Overlapping(other))
			require.Equal(t, tt.want, other.Overlapping(r))
		})
	}
}

func TestReservation_Includes(t *testing.T) {
	t.Parallel()
	r := model.NewReservation(1, 2, 3, "Gatsby", "Carl")

	require.False(t, r.Includes(1))
	require.True(t, r.Includes(2))
	require.True(t, r.Includes(3))
	require.False(t, r.Includes(4))
}

func TestReservation_Identify(t *testing.T) {
	t.Parallel()
	r := model.NewReservation(1, 1, 2, "Gatsby", "Carl")

	tests := []struct {
		name   string
		date   int
		book   string
		holder string
		want   model.Identity
	}{
		{name: "no book", date: 1, book: "Cosmos", holder: "Carl", want: model.NotThisBook},
		{name: "book checked before holder", date: 1, book: "Cosmos", holder: "Richard", want: model.NotThisBook},
		{name: "no holder", date: 1, book: "Gatsby", holder: "Richard", want: model.NotThisHolder},
		{name: "no date", date: 3, book: "Gatsby", holder: "Carl", want: model.NotThisDate},
		{name: "match", date: 2, book: "Gatsby", holder: "Carl", want: model.Match},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			require.Equal(t, tt.want, r.Identify(tt.date, tt.book, tt.holder))
		})
	}
}

func TestReservation_ChangeFor(t *testing.T) {
	t.Parallel()
	r := model.NewReservation(7, 1, 2, "Gatsby", "Carl")

	r.ChangeFor("Richard")

	require.Equal(t, "Richard", r.Holder)
	require.Equal(t, model.Match, r.Identify(1, "Gatsby", "Richard"))
	require.Equal(t, "reservation 7 of Gatsby from 1 to 2 for Richard", r.String())
}
