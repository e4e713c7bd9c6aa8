package systems

import (
	"math"
	"math/rand/v2"
	"time"

	"github.com/lixenwraith/runecast/constants"
	"github.com/lixenwraith/runecast/core"
	"github.com/lixenwraith/runecast/vmath"
)

// Fragment is a rectangular block of a shattered guide segment
// Pos is the block center in pixels, Y grows downward, Z is depth
type Fragment struct {
	Pos     vmath.Vec3F
	Vel     vmath.Vec3F
	Rot     vmath.Vec3F
	Spin    vmath.Vec3F
	W, H, D float64
	Color   core.RGB
	Settled bool
}

// Bottom returns the Y coordinate of the fragment's lower face
func (f *Fragment) Bottom() float64 { return f.Pos.Y + f.H/2 }

// Top returns the Y coordinate of the fragment's upper face
func (f *Fragment) Top() float64 { return f.Pos.Y - f.H/2 }

func (f *Fragment) settle() {
	f.Settled = true
	f.Vel = vmath.Vec3F{}
	f.Spin = vmath.Vec3F{}
}

// DebrisSystem simulates falling fragments that pile up on the floor
type DebrisSystem struct {
	fragments []Fragment
	width     float64
	height    float64
	rng       *rand.Rand
}

// NewDebrisSystem creates an empty debris field for a width x height pixel surface
func NewDebrisSystem(width, height float64, seed uint64) *DebrisSystem {
	return &DebrisSystem{
		fragments: make([]Fragment, 0, 128),
		width:     width,
		height:    height,
		rng:       rand.New(rand.NewPCG(seed, seed^0xdeb215)),
	}
}

// FloorY is the resting plane for fragment bottoms
func (ds *DebrisSystem) FloorY() float64 {
	return ds.height - constants.FragmentFloorMarginPx
}

// Resize moves the floor and walls; fragments shift with the floor so piles stay grounded
func (ds *DebrisSystem) Resize(width, height float64) {
	dy := height - ds.height
	ds.width = width
	ds.height = height
	for i := range ds.fragments {
		f := &ds.fragments[i]
		f.Pos.Y += dy
		f.Pos.X = vmath.Clamp(f.Pos.X, f.W/2, math.Max(f.W/2, width-f.W/2))
	}
}

// Spawn shatters a guide segment into max(4, len/8) fragments of one color and returns how many were added
func (ds *DebrisSystem) Spawn(line vmath.Line, color core.RGB) int {
	count := int(math.Floor(line.Length() / constants.FragmentSpacing))
	if count < constants.FragmentMinCount {
		count = constants.FragmentMinCount
	}

	for k := 0; k < count; k++ {
		t := (float64(k) + 0.5) / float64(count)
		at := vmath.Lerp(line.Start, line.End, t)

		f := Fragment{
			Pos: vmath.Vec3F{
				X: at.X + ds.jitter(constants.FragmentJitter),
				Y: at.Y + ds.jitter(constants.FragmentJitter),
			},
			Vel: vmath.Vec3F{
				X: ds.jitter(constants.FragmentLaunchSpeedX),
				Y: -ds.between(constants.FragmentLaunchMinUp, constants.FragmentLaunchMaxUp),
				Z: ds.jitter(constants.FragmentLaunchSpeedZ),
			},
			Rot: vmath.Vec3F{
				X: ds.rng.Float64() * 2 * math.Pi,
				Y: ds.rng.Float64() * 2 * math.Pi,
				Z: ds.rng.Float64() * 2 * math.Pi,
			},
			Spin: vmath.Vec3F{
				X: ds.jitter(constants.FragmentMaxSpin),
				Y: ds.jitter(constants.FragmentMaxSpin),
				Z: ds.jitter(constants.FragmentMaxSpin),
			},
			W:     ds.between(constants.FragmentMinWidth, constants.FragmentMaxWidth),
			H:     ds.between(constants.FragmentMinHeight, constants.FragmentMaxHeight),
			D:     ds.between(constants.FragmentMinDepth, constants.FragmentMaxDepth),
			Color: color,
		}
		ds.fragments = append(ds.fragments, f)
	}
	return count
}

// Step integrates all unsettled fragments by dt
func (ds *DebrisSystem) Step(dt time.Duration) {
	if dt <= 0 || len(ds.fragments) == 0 {
		return
	}
	frames := frameScale(dt)
	drag := math.Pow(constants.FragmentAirDrag, frames)
	angular := math.Pow(constants.FragmentAngularDecay, frames)
	floor := ds.FloorY()

	for i := range ds.fragments {
		f := &ds.fragments[i]
		if f.Settled {
			continue
		}

		f.Vel.Y += constants.FragmentGravity * frames
		f.Vel.X *= drag
		f.Vel.Z *= drag
		f.Spin = vmath.V3FScale(f.Spin, angular)

		f.Pos = vmath.V3FAdd(f.Pos, vmath.V3FScale(f.Vel, frames))
		f.Rot = vmath.V3FAdd(f.Rot, vmath.V3FScale(f.Spin, frames))

		if f.Pos.X-f.W/2 < 0 {
			f.Pos.X = f.W / 2
			f.Vel.X = -f.Vel.X * constants.FragmentWallRestitution
		} else if f.Pos.X+f.W/2 > ds.width {
			f.Pos.X = ds.width - f.W/2
			f.Vel.X = -f.Vel.X * constants.FragmentWallRestitution
		}

		if f.Bottom() >= floor {
			f.Pos.Y = floor - f.H/2
			f.Vel.Y = -f.Vel.Y * constants.FragmentFloorRestitution
			f.Vel.X *= constants.FragmentFloorDamping
			f.Vel.Z *= constants.FragmentFloorDamping
			f.Spin = vmath.V3FScale(f.Spin, constants.FragmentFloorSpinDamping)
			if math.Abs(f.Vel.Y) < constants.FragmentSettleVY && math.Abs(f.Vel.X) < constants.FragmentSettleVX {
				f.settle()
			}
		}
	}

	ds.stack()
}

// stack lands falling fragments on settled ones they overlap; O(n^2) over the field
func (ds *DebrisSystem) stack() {
	for i := range ds.fragments {
		f := &ds.fragments[i]
		if f.Settled || f.Vel.Y <= 0 {
			continue
		}
		for j := range ds.fragments {
			if i == j {
				continue
			}
			o := &ds.fragments[j]
			if !o.Settled || !overlaps(f, o) || f.Pos.Y >= o.Pos.Y {
				continue
			}

			f.Pos.Y = o.Top() - f.H/2
			f.Vel.Y *= constants.FragmentStackBounce
			f.Vel.X *= constants.FragmentStackDamping
			f.Vel.Z *= constants.FragmentStackDamping
			if math.Abs(f.Vel.Y) < constants.FragmentStackSettleVY {
				f.settle()
			}
			break
		}
	}
}

// overlaps tests axis-aligned box overlap on all three axes
func overlaps(a, b *Fragment) bool {
	return math.Abs(a.Pos.X-b.Pos.X) < (a.W+b.W)/2 &&
		math.Abs(a.Pos.Z-b.Pos.Z) < (a.D+b.D)/2 &&
		a.Bottom() > b.Top() && a.Top() < b.Bottom()
}

// Fragments returns the live fragment list; callers must not retain or modify it
func (ds *DebrisSystem) Fragments() []Fragment {
	return ds.fragments
}

// Count returns the number of fragments
func (ds *DebrisSystem) Count() int {
	return len(ds.fragments)
}

// SettledCount returns the number of resting fragments
func (ds *DebrisSystem) SettledCount() int {
	n := 0
	for i := range ds.fragments {
		if ds.fragments[i].Settled {
			n++
		}
	}
	return n
}

// Clear removes all fragments
func (ds *DebrisSystem) Clear() {
	ds.fragments = ds.fragments[:0]
}

func (ds *DebrisSystem) jitter(amount float64) float64 {
	return (ds.rng.Float64()*2 - 1) * amount
}

func (ds *DebrisSystem) between(lo, hi float64) float64 {
	return lo + ds.rng.Float64()*(hi-lo)
}
