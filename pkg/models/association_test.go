package models

import "testing"

func TestListFind(t *testing.T) {
	t.Parallel()

	list := List{
		{Extension: ".xcf", IconPath: "first.png"},
		{Extension: ".XCF", IconPath: "upper.png"},
		{Extension: ".xcf", IconPath: "second.png"},
	}

	tests := []struct {
		name string
		ext  string
		want int
	}{
		{"first duplicate wins", ".xcf", 0},
		{"case preserved", ".XCF", 1},
		{"missing", ".png", -1},
		{"no wildcard", ".*", -1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := list.Find(tt.ext); got != tt.want {
				t.Errorf("Find(%q) = %d, want %d", tt.ext, got, tt.want)
			}
		})
	}
}

func TestListWithoutKeepsOrder(t *testing.T) {
	t.Parallel()

	list := List{
		{Extension: ".a", IconPath: "a.png"},
		{Extension: ".b", IconPath: "b.png"},
		{Extension: ".c", IconPath: "c.png"},
	}
	got := list.Without(1)

	if len(got) != 2 || got[0].Extension != ".a" || got[1].Extension != ".c" {
		t.Fatalf("Without(1) = %+v", got)
	}
	if len(list) != 3 || list[1].Extension != ".b" {
		t.Errorf("Without must not modify the receiver, got %+v", list)
	}
}

func TestListClone(t *testing.T) {
	t.Parallel()

	list := List{{Extension: ".a", IconPath: "a.png"}}
	c := list.Clone()
	c[0].IconPath = "changed.png"
	if list[0].IconPath != "a.png" {
		t.Errorf("Clone shares backing array with original")
	}
}
