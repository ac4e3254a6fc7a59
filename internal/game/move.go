package game

// Direction is a move direction.
type Direction int

const (
	DirUp Direction = iota
	DirDown
	DirLeft
	DirRight
)

// String returns the direction name.
func (d Direction) String() string {
	switch d {
	case DirUp:
		return "up"
	case DirDown:
		return "down"
	case DirLeft:
		return "left"
	case DirRight:
		return "right"
	default:
		return "unknown"
	}
}

// Valid reports whether d is one of the four directions.
func (d Direction) Valid() bool {
	return d >= DirUp && d <= DirRight
}

// lineGeometry describes how a direction walks the board:
// first cell of the first line, distance between cells on a line,
// distance between the first cells of consecutive lines, and the counts.
type lineGeometry struct {
	start      int
	stride     int
	nextStride int
	lines      int
	length     int
}

func geometry(d Direction) lineGeometry {
	switch d {
	case DirUp:
		return lineGeometry{start: 0, stride: Width, nextStride: 1, lines: Width, length: Height}
	case DirDown:
		return lineGeometry{start: Width * (Height - 1), stride: -Width, nextStride: 1, lines: Width, length: Height}
	case DirLeft:
		return lineGeometry{start: 0, stride: 1, nextStride: Width, lines: Height, length: Width}
	default:
		return lineGeometry{start: Width - 1, stride: -1, nextStride: Width, lines: Height, length: Width}
	}
}

// MoveResult describes what a single move did.
type MoveResult struct {
	Direction Direction
	Accepted  bool   // false when the session had already ended
	Changed   bool   // some tile moved or merged
	Merges    int    // merge events, at most one per line
	Gained    uint64 // score added by this move
	Won       bool   // a merge reached the target exponent
	Spawned   bool
	SpawnCell int
	SpawnExp  int
}

// Engine applies moves to a board and score.
type Engine struct {
	target  int
	policy  SpawnPolicy
	spawner *Spawner
}

// NewEngine creates a move engine for the given configuration.
func NewEngine(cfg Config, spawner *Spawner) *Engine {
	return &Engine{
		target:  cfg.TargetExponent,
		policy:  cfg.SpawnPolicy,
		spawner: spawner,
	}
}

// Apply compacts and merges every line of b in direction d, adds merge
// points to score, then asks the spawner for a new tile. A full board is
// not an error here: the result simply reports no spawn.
func (e *Engine) Apply(b *Board, score *Score, d Direction) MoveResult {
	res := MoveResult{Direction: d, Accepted: true, SpawnCell: -1}
	if !d.Valid() {
		return res
	}

	e.slide(b, score, d, &res)

	if e.policy == SpawnOnChange && !res.Changed {
		return res
	}
	cell, exp, err := e.spawner.Spawn(b)
	if err == nil {
		res.Spawned = true
		res.SpawnCell = cell
		res.SpawnExp = exp
	}
	return res
}

// slide compacts and merges every line without spawning.
func (e *Engine) slide(b *Board, score *Score, d Direction, res *MoveResult) {
	g := geometry(d)
	for l := range g.lines {
		e.moveLine(b, score, g.start+l*g.nextStride, g.stride, g.length, res)
	}
}

// moveLine runs one pass over a line, pulling each occupied cell down to the
// next write slot. The first time an incoming tile equals the tile in the
// slot before it, the two merge; later equal pairs on the same line are
// left alone for this move.
func (e *Engine) moveLine(b *Board, score *Score, start, stride, length int, res *MoveResult) {
	write := 0
	merged := false

	for read := range length {
		cell := start + read*stride
		exp := b.Get(cell)
		if exp == 0 {
			continue
		}

		if write > 0 && !merged {
			prev := start + (write-1)*stride
			if b.Get(prev) == exp {
				b.Set(prev, exp+1)
				b.Clear(cell)
				merged = true

				gained := uint64(4) << (exp + 1)
				score.Add(gained)
				res.Gained += gained
				res.Merges++
				res.Changed = true
				if exp+1 == e.target {
					res.Won = true
				}
				continue
			}
		}

		dst := start + write*stride
		if dst != cell {
			b.Set(dst, exp)
			b.Clear(cell)
			res.Changed = true
		}
		write++
	}
}
