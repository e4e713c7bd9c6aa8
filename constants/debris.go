package constants

// Fragment spawning
const (
	FragmentMinCount      = 4
	FragmentSpacing       = 8.0
	FragmentJitter        = 3.0
	FragmentMinWidth      = 4.0
	FragmentMaxWidth      = 10.0
	FragmentMinHeight     = 3.0
	FragmentMaxHeight     = 8.0
	FragmentMinDepth      = 4.0
	FragmentMaxDepth      = 10.0
	FragmentMaxSpin       = 0.2
	FragmentLaunchSpeedX  = 3.0
	FragmentLaunchSpeedZ  = 2.0
	FragmentLaunchMinUp   = 2.0
	FragmentLaunchMaxUp   = 6.0
	FragmentFloorMarginPx = 16.0
)

// Fragment physics, per simulation frame
const (
	FragmentGravity          = 0.6
	FragmentAirDrag          = 0.96
	FragmentAngularDecay     = 0.98
	FragmentFloorRestitution = 0.3
	FragmentFloorDamping     = 0.7
	FragmentFloorSpinDamping = 0.5
	FragmentSettleVY         = 1.0
	FragmentSettleVX         = 0.5
	FragmentWallRestitution  = 0.5
	FragmentStackBounce      = -0.2
	FragmentStackDamping     = 0.5
	FragmentStackSettleVY    = 0.8
)
