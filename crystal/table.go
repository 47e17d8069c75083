package crystal

import (
	"strings"
	"sync"
)

type tableEntry struct {
	number  int
	hm      string
	setting string
	hall    string
	// aliases are further accepted names: short monoclinic symbols and the
	// e-glide spellings
	aliases []string

	once  sync.Once
	group *SpaceGroup
	err   error
}

func (e *tableEntry) build() (*SpaceGroup, error) {
	e.once.Do(func() {
		gens, err := parseHall(e.hall)
		if err != nil {
			e.err = err
			return
		}
		g, err := generate(gens)
		if err != nil {
			e.err = err
			return
		}
		g.number, g.hm, g.setting, g.hall = e.number, e.hm, e.setting, e.hall
		e.group = g
	})
	return e.group, e.err
}

// spaceGroupTable lists the reference setting of every space group (unique
// axis b for monoclinic groups, hexagonal axes as the default for rhombohedral
// groups, origin choice 1 where two exist), each followed by its common
// alternative settings.
// SpaceGroupByNumber returns the first entry of a number.
var spaceGroupTable = []tableEntry{
	{number: 1, hm: "P 1", hall: "P 1"},
	{number: 2, hm: "P -1", hall: "-P 1"},
	{number: 3, hm: "P 1 2 1", hall: "P 2y", aliases: []string{"P 2"}},
	{number: 4, hm: "P 1 21 1", hall: "P 2yb", aliases: []string{"P 21"}},
	{number: 5, hm: "C 1 2 1", hall: "C 2y", aliases: []string{"C 2"}},
	{number: 5, hm: "I 1 2 1", hall: "I 2y", aliases: []string{"I 2"}},
	{number: 6, hm: "P 1 m 1", hall: "P -2y", aliases: []string{"P m"}},
	{number: 7, hm: "P 1 c 1", hall: "P -2yc", aliases: []string{"P c"}},
	{number: 8, hm: "C 1 m 1", hall: "C -2y", aliases: []string{"C m"}},
	{number: 9, hm: "C 1 c 1", hall: "C -2yc", aliases: []string{"C c"}},
	{number: 10, hm: "P 1 2/m 1", hall: "-P 2y", aliases: []string{"P 2/m"}},
	{number: 11, hm: "P 1 21/m 1", hall: "-P 2yb", aliases: []string{"P 21/m"}},
	{number: 12, hm: "C 1 2/m 1", hall: "-C 2y", aliases: []string{"C 2/m"}},
	{number: 13, hm: "P 1 2/c 1", hall: "-P 2yc", aliases: []string{"P 2/c"}},
	{number: 14, hm: "P 1 21/c 1", hall: "-P 2ybc", aliases: []string{"P 21/c"}},
	{number: 14, hm: "P 1 21/n 1", hall: "-P 2yn", aliases: []string{"P 21/n"}},
	{number: 14, hm: "P 1 21/a 1", hall: "-P 2yab", aliases: []string{"P 21/a"}},
	{number: 15, hm: "C 1 2/c 1", hall: "-C 2yc", aliases: []string{"C 2/c"}},
	{number: 15, hm: "I 1 2/a 1", hall: "-I 2ya", aliases: []string{"I 2/a"}},
	{number: 16, hm: "P 2 2 2", hall: "P 2 2"},
	{number: 17, hm: "P 2 2 21", hall: "P 2c 2"},
	{number: 18, hm: "P 21 21 2", hall: "P 2 2ab"},
	{number: 19, hm: "P 21 21 21", hall: "P 2ac 2ab"},
	{number: 20, hm: "C 2 2 21", hall: "C 2c 2"},
	{number: 21, hm: "C 2 2 2", hall: "C 2 2"},
	{number: 22, hm: "F 2 2 2", hall: "F 2 2"},
	{number: 23, hm: "I 2 2 2", hall: "I 2 2"},
	{number: 24, hm: "I 21 21 21", hall: "I 2b 2c"},
	{number: 25, hm: "P m m 2", hall: "P 2 -2"},
	{number: 26, hm: "P m c 21", hall: "P 2c -2"},
	{number: 27, hm: "P c c 2", hall: "P 2 -2c"},
	{number: 28, hm: "P m a 2", hall: "P 2 -2a"},
	{number: 29, hm: "P c a 21", hall: "P 2c -2ac"},
	{number: 30, hm: "P n c 2", hall: "P 2 -2bc"},
	{number: 31, hm: "P m n 21", hall: "P 2ac -2"},
	{number: 32, hm: "P b a 2", hall: "P 2 -2ab"},
	{number: 33, hm: "P n a 21", hall: "P 2c -2n"},
	{number: 34, hm: "P n n 2", hall: "P 2 -2n"},
	{number: 35, hm: "C m m 2", hall: "C 2 -2"},
	{number: 36, hm: "C m c 21", hall: "C 2c -2"},
	{number: 37, hm: "C c c 2", hall: "C 2 -2c"},
	{number: 38, hm: "A m m 2", hall: "A 2 -2"},
	{number: 39, hm: "A b m 2", hall: "A 2 -2c", aliases: []string{"A e m 2"}},
	{number: 40, hm: "A m a 2", hall: "A 2 -2a"},
	{number: 41, hm: "A b a 2", hall: "A 2 -2ac", aliases: []string{"A e a 2"}},
	{number: 42, hm: "F m m 2", hall: "F 2 -2"},
	{number: 43, hm: "F d d 2", hall: "F 2 -2d"},
	{number: 44, hm: "I m m 2", hall: "I 2 -2"},
	{number: 45, hm: "I b a 2", hall: "I 2 -2c"},
	{number: 46, hm: "I m a 2", hall: "I 2 -2a"},
	{number: 47, hm: "P m m m", hall: "-P 2 2"},
	{number: 48, hm: "P n n n", setting: "1", hall: "P 2 2 -1n"},
	{number: 48, hm: "P n n n", setting: "2", hall: "-P 2ab 2bc"},
	{number: 49, hm: "P c c m", hall: "-P 2 2c"},
	{number: 50, hm: "P b a n", setting: "1", hall: "P 2 2 -1ab"},
	{number: 50, hm: "P b a n", setting: "2", hall: "-P 2ab 2b"},
	{number: 51, hm: "P m m a", hall: "-P 2a 2a"},
	{number: 52, hm: "P n n a", hall: "-P 2a 2bc"},
	{number: 53, hm: "P m n a", hall: "-P 2ac 2"},
	{number: 54, hm: "P c c a", hall: "-P 2a 2ac"},
	{number: 55, hm: "P b a m", hall: "-P 2 2ab"},
	{number: 56, hm: "P c c n", hall: "-P 2ab 2ac"},
	{number: 57, hm: "P b c m", hall: "-P 2c 2b"},
	{number: 58, hm: "P n n m", hall: "-P 2 2n"},
	{number: 59, hm: "P m m n", setting: "1", hall: "P 2 2ab -1ab"},
	{number: 59, hm: "P m m n", setting: "2", hall: "-P 2ab 2a"},
	{number: 60, hm: "P b c n", hall: "-P 2n 2ab"},
	{number: 61, hm: "P b c a", hall: "-P 2ac 2ab"},
	{number: 62, hm: "P n m a", hall: "-P 2ac 2n"},
	{number: 63, hm: "C m c m", hall: "-C 2c 2"},
	{number: 64, hm: "C m c a", hall: "-C 2bc 2", aliases: []string{"C m c e"}},
	{number: 65, hm: "C m m m", hall: "-C 2 2"},
	{number: 66, hm: "C c c m", hall: "-C 2 2c"},
	{number: 67, hm: "C m m a", hall: "-C 2b 2", aliases: []string{"C m m e"}},
	{number: 68, hm: "C c c a", setting: "1", hall: "C 2 2 -1bc", aliases: []string{"C c c e"}},
	{number: 68, hm: "C c c a", setting: "2", hall: "-C 2b 2bc", aliases: []string{"C c c e"}},
	{number: 69, hm: "F m m m", hall: "-F 2 2"},
	{number: 70, hm: "F d d d", setting: "1", hall: "F 2 2 -1d"},
	{number: 70, hm: "F d d d", setting: "2", hall: "-F 2uv 2vw"},
	{number: 71, hm: "I m m m", hall: "-I 2 2"},
	{number: 72, hm: "I b a m", hall: "-I 2 2c"},
	{number: 73, hm: "I b c a", hall: "-I 2b 2c"},
	{number: 74, hm: "I m m a", hall: "-I 2b 2"},
	{number: 75, hm: "P 4", hall: "P 4"},
	{number: 76, hm: "P 41", hall: "P 4w"},
	{number: 77, hm: "P 42", hall: "P 4c"},
	{number: 78, hm: "P 43", hall: "P 4cw"},
	{number: 79, hm: "I 4", hall: "I 4"},
	{number: 80, hm: "I 41", hall: "I 4bw"},
	{number: 81, hm: "P -4", hall: "P -4"},
	{number: 82, hm: "I -4", hall: "I -4"},
	{number: 83, hm: "P 4/m", hall: "-P 4"},
	{number: 84, hm: "P 42/m", hall: "-P 4c"},
	{number: 85, hm: "P 4/n", setting: "1", hall: "P 4ab -1ab"},
	{number: 85, hm: "P 4/n", setting: "2", hall: "-P 4a"},
	{number: 86, hm: "P 42/n", setting: "1", hall: "P 4n -1n"},
	{number: 86, hm: "P 42/n", setting: "2", hall: "-P 4bc"},
	{number: 87, hm: "I 4/m", hall: "-I 4"},
	{number: 88, hm: "I 41/a", setting: "1", hall: "I 4bw -1bw"},
	{number: 88, hm: "I 41/a", setting: "2", hall: "-I 4ad"},
	{number: 89, hm: "P 4 2 2", hall: "P 4 2"},
	{number: 90, hm: "P 4 21 2", hall: "P 4ab 2ab"},
	{number: 91, hm: "P 41 2 2", hall: "P 4w 2c"},
	{number: 92, hm: "P 41 21 2", hall: "P 4abw 2nw"},
	{number: 93, hm: "P 42 2 2", hall: "P 4c 2"},
	{number: 94, hm: "P 42 21 2", hall: "P 4n 2n"},
	{number: 95, hm: "P 43 2 2", hall: "P 4cw 2c"},
	{number: 96, hm: "P 43 21 2", hall: "P 4nw 2abw"},
	{number: 97, hm: "I 4 2 2", hall: "I 4 2"},
	{number: 98, hm: "I 41 2 2", hall: "I 4bw 2bw"},
	{number: 99, hm: "P 4 m m", hall: "P 4 -2"},
	{number: 100, hm: "P 4 b m", hall: "P 4 -2ab"},
	{number: 101, hm: "P 42 c m", hall: "P 4c -2c"},
	{number: 102, hm: "P 42 n m", hall: "P 4n -2n"},
	{number: 103, hm: "P 4 c c", hall: "P 4 -2c"},
	{number: 104, hm: "P 4 n c", hall: "P 4 -2n"},
	{number: 105, hm: "P 42 m c", hall: "P 4c -2"},
	{number: 106, hm: "P 42 b c", hall: "P 4c -2ab"},
	{number: 107, hm: "I 4 m m", hall: "I 4 -2"},
	{number: 108, hm: "I 4 c m", hall: "I 4 -2c"},
	{number: 109, hm: "I 41 m d", hall: "I 4bw -2"},
	{number: 110, hm: "I 41 c d", hall: "I 4bw -2c"},
	{number: 111, hm: "P -4 2 m", hall: "P -4 2"},
	{number: 112, hm: "P -4 2 c", hall: "P -4 2c"},
	{number: 113, hm: "P -4 21 m", hall: "P -4 2ab"},
	{number: 114, hm: "P -4 21 c", hall: "P -4 2n"},
	{number: 115, hm: "P -4 m 2", hall: "P -4 -2"},
	{number: 116, hm: "P -4 c 2", hall: "P -4 -2c"},
	{number: 117, hm: "P -4 b 2", hall: "P -4 -2ab"},
	{number: 118, hm: "P -4 n 2", hall: "P -4 -2n"},
	{number: 119, hm: "I -4 m 2", hall: "I -4 -2"},
	{number: 120, hm: "I -4 c 2", hall: "I -4 -2c"},
	{number: 121, hm: "I -4 2 m", hall: "I -4 2"},
	{number: 122, hm: "I -4 2 d", hall: "I -4 2bw"},
	{number: 123, hm: "P 4/m m m", hall: "-P 4 2"},
	{number: 124, hm: "P 4/m c c", hall: "-P 4 2c"},
	{number: 125, hm: "P 4/n b m", setting: "1", hall: "P 4 2 -1ab"},
	{number: 125, hm: "P 4/n b m", setting: "2", hall: "-P 4a 2b"},
	{number: 126, hm: "P 4/n n c", setting: "1", hall: "P 4 2 -1n"},
	{number: 126, hm: "P 4/n n c", setting: "2", hall: "-P 4a 2bc"},
	{number: 127, hm: "P 4/m b m", hall: "-P 4 2ab"},
	{number: 128, hm: "P 4/m n c", hall: "-P 4 2n"},
	{number: 129, hm: "P 4/n m m", setting: "1", hall: "P 4ab 2ab -1ab"},
	{number: 129, hm: "P 4/n m m", setting: "2", hall: "-P 4a 2a"},
	{number: 130, hm: "P 4/n c c", setting: "1", hall: "P 4ab 2n -1ab"},
	{number: 130, hm: "P 4/n c c", setting: "2", hall: "-P 4a 2ac"},
	{number: 131, hm: "P 42/m m c", hall: "-P 4c 2"},
	{number: 132, hm: "P 42/m c m", hall: "-P 4c 2c"},
	{number: 133, hm: "P 42/n b c", setting: "1", hall: "P 4n 2c -1n"},
	{number: 133, hm: "P 42/n b c", setting: "2", hall: "-P 4ac 2b"},
	{number: 134, hm: "P 42/n n m", setting: "1", hall: "P 4n 2 -1n"},
	{number: 134, hm: "P 42/n n m", setting: "2", hall: "-P 4ac 2bc"},
	{number: 135, hm: "P 42/m b c", hall: "-P 4c 2ab"},
	{number: 136, hm: "P 42/m n m", hall: "-P 4n 2n"},
	{number: 137, hm: "P 42/n m c", setting: "1", hall: "P 4n 2n -1n"},
	{number: 137, hm: "P 42/n m c", setting: "2", hall: "-P 4ac 2a"},
	{number: 138, hm: "P 42/n c m", setting: "1", hall: "P 4n 2ab -1n"},
	{number: 138, hm: "P 42/n c m", setting: "2", hall: "-P 4ac 2ac"},
	{number: 139, hm: "I 4/m m m", hall: "-I 4 2"},
	{number: 140, hm: "I 4/m c m", hall: "-I 4 2c"},
	{number: 141, hm: "I 41/a m d", setting: "1", hall: "I 4bw 2bw -1bw"},
	{number: 141, hm: "I 41/a m d", setting: "2", hall: "-I 4bd 2"},
	{number: 142, hm: "I 41/a c d", setting: "1", hall: "I 4bw 2aw -1bw"},
	{number: 142, hm: "I 41/a c d", setting: "2", hall: "-I 4bd 2c"},
	{number: 143, hm: "P 3", hall: "P 3"},
	{number: 144, hm: "P 31", hall: "P 31"},
	{number: 145, hm: "P 32", hall: "P 32"},
	{number: 146, hm: "R 3", setting: "H", hall: "R 3"},
	{number: 146, hm: "R 3", setting: "R", hall: "P 3*"},
	{number: 147, hm: "P -3", hall: "-P 3"},
	{number: 148, hm: "R -3", setting: "H", hall: "-R 3"},
	{number: 148, hm: "R -3", setting: "R", hall: "-P 3*"},
	{number: 149, hm: "P 3 1 2", hall: "P 3 2"},
	{number: 150, hm: "P 3 2 1", hall: "P 3 2\""},
	{number: 151, hm: "P 31 1 2", hall: "P 31 2c (0 0 1)"},
	{number: 152, hm: "P 31 2 1", hall: "P 31 2\""},
	{number: 153, hm: "P 32 1 2", hall: "P 32 2c (0 0 -1)"},
	{number: 154, hm: "P 32 2 1", hall: "P 32 2\""},
	{number: 155, hm: "R 3 2", setting: "H", hall: "R 3 2\""},
	{number: 155, hm: "R 3 2", setting: "R", hall: "P 3* 2"},
	{number: 156, hm: "P 3 m 1", hall: "P 3 -2\""},
	{number: 157, hm: "P 3 1 m", hall: "P 3 -2"},
	{number: 158, hm: "P 3 c 1", hall: "P 3 -2\"c"},
	{number: 159, hm: "P 3 1 c", hall: "P 3 -2c"},
	{number: 160, hm: "R 3 m", setting: "H", hall: "R 3 -2\""},
	{number: 160, hm: "R 3 m", setting: "R", hall: "P 3* -2"},
	{number: 161, hm: "R 3 c", setting: "H", hall: "R 3 -2\"c"},
	{number: 161, hm: "R 3 c", setting: "R", hall: "P 3* -2n"},
	{number: 162, hm: "P -3 1 m", hall: "-P 3 2"},
	{number: 163, hm: "P -3 1 c", hall: "-P 3 2c"},
	{number: 164, hm: "P -3 m 1", hall: "-P 3 2\""},
	{number: 165, hm: "P -3 c 1", hall: "-P 3 2\"c"},
	{number: 166, hm: "R -3 m", setting: "H", hall: "-R 3 2\""},
	{number: 166, hm: "R -3 m", setting: "R", hall: "-P 3* 2"},
	{number: 167, hm: "R -3 c", setting: "H", hall: "-R 3 2\"c"},
	{number: 167, hm: "R -3 c", setting: "R", hall: "-P 3* 2n"},
	{number: 168, hm: "P 6", hall: "P 6"},
	{number: 169, hm: "P 61", hall: "P 61"},
	{number: 170, hm: "P 65", hall: "P 65"},
	{number: 171, hm: "P 62", hall: "P 62"},
	{number: 172, hm: "P 64", hall: "P 64"},
	{number: 173, hm: "P 63", hall: "P 6c"},
	{number: 174, hm: "P -6", hall: "P -6"},
	{number: 175, hm: "P 6/m", hall: "-P 6"},
	{number: 176, hm: "P 63/m", hall: "-P 6c"},
	{number: 177, hm: "P 6 2 2", hall: "P 6 2"},
	{number: 178, hm: "P 61 2 2", hall: "P 61 2 (0 0 -1)"},
	{number: 179, hm: "P 65 2 2", hall: "P 65 2 (0 0 1)"},
	{number: 180, hm: "P 62 2 2", hall: "P 62 2c (0 0 1)"},
	{number: 181, hm: "P 64 2 2", hall: "P 64 2c (0 0 -1)"},
	{number: 182, hm: "P 63 2 2", hall: "P 6c 2c"},
	{number: 183, hm: "P 6 m m", hall: "P 6 -2"},
	{number: 184, hm: "P 6 c c", hall: "P 6 -2c"},
	{number: 185, hm: "P 63 c m", hall: "P 6c -2"},
	{number: 186, hm: "P 63 m c", hall: "P 6c -2c"},
	{number: 187, hm: "P -6 m 2", hall: "P -6 2"},
	{number: 188, hm: "P -6 c 2", hall: "P -6c 2"},
	{number: 189, hm: "P -6 2 m", hall: "P -6 -2"},
	{number: 190, hm: "P -6 2 c", hall: "P -6c -2c"},
	{number: 191, hm: "P 6/m m m", hall: "-P 6 2"},
	{number: 192, hm: "P 6/m c c", hall: "-P 6 2c"},
	{number: 193, hm: "P 63/m c m", hall: "-P 6c 2"},
	{number: 194, hm: "P 63/m m c", hall: "-P 6c 2c"},
	{number: 195, hm: "P 2 3", hall: "P 2 2 3"},
	{number: 196, hm: "F 2 3", hall: "F 2 2 3"},
	{number: 197, hm: "I 2 3", hall: "I 2 2 3"},
	{number: 198, hm: "P 21 3", hall: "P 2ac 2ab 3"},
	{number: 199, hm: "I 21 3", hall: "I 2b 2c 3"},
	{number: 200, hm: "P m -3", hall: "-P 2 2 3"},
	{number: 201, hm: "P n -3", setting: "1", hall: "P 2 2 3 -1n"},
	{number: 201, hm: "P n -3", setting: "2", hall: "-P 2ab 2bc 3"},
	{number: 202, hm: "F m -3", hall: "-F 2 2 3"},
	{number: 203, hm: "F d -3", setting: "1", hall: "F 2 2 3 -1d"},
	{number: 203, hm: "F d -3", setting: "2", hall: "-F 2uv 2vw 3"},
	{number: 204, hm: "I m -3", hall: "-I 2 2 3"},
	{number: 205, hm: "P a -3", hall: "-P 2ac 2ab 3"},
	{number: 206, hm: "I a -3", hall: "-I 2b 2c 3"},
	{number: 207, hm: "P 4 3 2", hall: "P 4 2 3"},
	{number: 208, hm: "P 42 3 2", hall: "P 4n 2 3"},
	{number: 209, hm: "F 4 3 2", hall: "F 4 2 3"},
	{number: 210, hm: "F 41 3 2", hall: "F 4d 2 3"},
	{number: 211, hm: "I 4 3 2", hall: "I 4 2 3"},
	{number: 212, hm: "P 43 3 2", hall: "P 4acd 2ab 3"},
	{number: 213, hm: "P 41 3 2", hall: "P 4bd 2ab 3"},
	{number: 214, hm: "I 41 3 2", hall: "I 4bd 2c 3"},
	{number: 215, hm: "P -4 3 m", hall: "P -4 2 3"},
	{number: 216, hm: "F -4 3 m", hall: "F -4 2 3"},
	{number: 217, hm: "I -4 3 m", hall: "I -4 2 3"},
	{number: 218, hm: "P -4 3 n", hall: "P -4n 2 3"},
	{number: 219, hm: "F -4 3 c", hall: "F -4a 2 3"},
	{number: 220, hm: "I -4 3 d", hall: "I -4bd 2c 3"},
	{number: 221, hm: "P m -3 m", hall: "-P 4 2 3"},
	{number: 222, hm: "P n -3 n", setting: "1", hall: "P 4 2 3 -1n"},
	{number: 222, hm: "P n -3 n", setting: "2", hall: "-P 4a 2bc 3"},
	{number: 223, hm: "P m -3 n", hall: "-P 4n 2 3"},
	{number: 224, hm: "P n -3 m", setting: "1", hall: "P 4n 2 3 -1n"},
	{number: 224, hm: "P n -3 m", setting: "2", hall: "-P 4bc 2bc 3"},
	{number: 225, hm: "F m -3 m", hall: "-F 4 2 3"},
	{number: 226, hm: "F m -3 c", hall: "-F 4a 2 3"},
	{number: 227, hm: "F d -3 m", setting: "1", hall: "F 4d 2 3 -1d"},
	{number: 227, hm: "F d -3 m", setting: "2", hall: "-F 4vw 2vw 3"},
	{number: 228, hm: "F d -3 c", setting: "1", hall: "F 4d 2 3 -1ad"},
	{number: 228, hm: "F d -3 c", setting: "2", hall: "-F 4ud 2vw 3"},
	{number: 229, hm: "I m -3 m", hall: "-I 4 2 3"},
	{number: 230, hm: "I a -3 d", hall: "-I 4bd 2c 3"},
}

var (
	nameIndexOnce sync.Once
	nameIndex     map[string]*tableEntry
	hallIndex     map[string]*tableEntry
)

// compactName strips whitespace and upper-cases a symbol for lookup.
func compactName(s string) string {
	return strings.ToUpper(strings.Join(strings.Fields(s), ""))
}

func buildIndexes() {
	nameIndex = make(map[string]*tableEntry, 2*len(spaceGroupTable))
	hallIndex = make(map[string]*tableEntry, len(spaceGroupTable))
	for i := range spaceGroupTable {
		e := &spaceGroupTable[i]
		hallIndex[strings.Join(strings.Fields(e.hall), " ")] = e
		names := append([]string{e.hm}, e.aliases...)
		for _, n := range names {
			key := compactName(n)
			switch e.setting {
			case "H":
				nameIndex[key] = e
				nameIndex[key+":H"] = e
				// PDB-style "H 3" for the hexagonal setting
				nameIndex["H"+key[1:]] = e
			case "R":
				nameIndex[key+":R"] = e
			case "1":
				nameIndex[key] = e
				nameIndex[key+":1"] = e
			case "2":
				nameIndex[key+":2"] = e
			default:
				nameIndex[key] = e
			}
		}
	}
}

func lookupName(name string) (*tableEntry, bool) {
	nameIndexOnce.Do(buildIndexes)
	e, ok := nameIndex[compactName(name)]
	return e, ok
}

func lookupHall(hall string) (*tableEntry, bool) {
	nameIndexOnce.Do(buildIndexes)
	e, ok := hallIndex[strings.Join(strings.Fields(hall), " ")]
	return e, ok
}

// identify finds the table entry with exactly the operators of g.
func identify(g *SpaceGroup) (*tableEntry, bool) {
	for i := range spaceGroupTable {
		e := &spaceGroupTable[i]
		if ref, err := e.build(); err == nil && ref.Equal(g) {
			return e, true
		}
	}
	return nil, false
}
