package task

import (
	"fmt"

	"github.com/kestrel-sim/kestrel/internal/catalog"
	"github.com/kestrel-sim/kestrel/internal/config"
	"github.com/kestrel-sim/kestrel/internal/reward"
	"github.com/kestrel-sim/kestrel/internal/termination"
)

// Discrete cardinalities and continuous bounds of the four control
// dimensions: aileron, elevator, rudder, throttle.
var (
	headingNvec       = []int{41, 41, 41, 30}
	headingActionLow  = []float64{-1.0, -1.0, -1.0, 0.4}
	headingActionHigh = []float64{1.0, 1.0, 1.0, 0.9}
)

const headingObsDim = 8

// NewHeading builds the heading-control task with a discrete action space.
// The task flies a single fighter toward a commanded heading while holding
// altitude and speed; constructing it with more than one fighter is a
// configuration error.
func NewHeading(cfg *config.Config) (*Task, error) {
	return newHeading(cfg, "heading",
		NewDiscreteDecoder(headingNvec, headingActionLow, headingActionHigh),
		headingTerminations(cfg))
}

// NewHeadingContinuous is the heading task with a continuous, clamped
// action space. Everything else is shared with NewHeading.
func NewHeadingContinuous(cfg *config.Config) (*Task, error) {
	return newHeading(cfg, "heading_continuous",
		NewContinuousDecoder(headingActionLow, headingActionHigh),
		headingTerminations(cfg))
}

// NewHeadingAltitude is the heading task that additionally checks the
// commanded altitude at each goal check.
func NewHeadingAltitude(cfg *config.Config) (*Task, error) {
	conds := []termination.Condition{
		termination.NewUnreachHeadingAltitude(cfg.CheckIntervalSec, cfg.HeadingToleranceDeg, cfg.AltitudeToleranceFt),
		termination.NewExtremeState(cfg.RollLimitRad, cfg.PitchLimitRad),
		termination.NewOverload(cfg.AccelerationLimitX, cfg.AccelerationLimitY, cfg.AccelerationLimitZ),
		termination.NewLowAltitude(cfg.AltitudeFloorFt),
		termination.NewTimeout(cfg.MaxEpisodeSec),
	}
	return newHeading(cfg, "heading_altitude",
		NewDiscreteDecoder(headingNvec, headingActionLow, headingActionHigh),
		conds)
}

func newHeading(cfg *config.Config, name string, dec ActionDecoder, conds []termination.Condition) (*Task, error) {
	if cfg.NumFighters != 1 {
		return nil, fmt.Errorf("%w: %s task supports exactly one fighter, got %d",
			ErrConfig, name, cfg.NumFighters)
	}
	return New(Spec{
		Name:   name,
		Agents: cfg.NumFighters,
		Vars: Variables{
			State: []catalog.Property{
				catalog.DeltaAltitudeFt,
				catalog.DeltaHeadingDeg,
				catalog.AttitudeRollRad,
				catalog.AttitudePitchRad,
				catalog.VelocitiesVNorthFps,
				catalog.VelocitiesVEastFps,
				catalog.VelocitiesVDownFps,
				catalog.VelocitiesVcFps,
			},
			Action: []catalog.Property{
				catalog.FcsAileronCmdNorm,
				catalog.FcsElevatorCmdNorm,
				catalog.FcsRudderCmdNorm,
				catalog.FcsThrottleCmdNorm,
			},
			Render: []catalog.Property{
				catalog.PositionLongGcDeg,
				catalog.PositionLatGeodDeg,
				catalog.PositionHSLFt,
				catalog.AttitudeRollRad,
				catalog.AttitudePitchRad,
				catalog.AttitudeHeadingTrueRad,
			},
		},
		ObservationSpace: NewUniformBox(-10, 10, headingObsDim),
		Scales: []Scale{
			FeetToKilometers, // delta altitude, km
			DegreesToRadians, // delta heading, rad
			Identity,         // roll, rad
			Identity,         // pitch, rad
			FpsToMach,        // v north
			FpsToMach,        // v east
			FpsToMach,        // v down
			FpsToMach,        // vc
		},
		Decoder: dec,
		Rewards: []reward.Unit{
			reward.NewHeading(cfg.TargetSpeedFps),
			reward.NewAltitude(cfg.SafeAltitudeKm, cfg.DangerAltitudeKm),
		},
		Terminations: conds,
	})
}

func headingTerminations(cfg *config.Config) []termination.Condition {
	// Declared order is priority order: the goal check outranks the
	// failure guards, and Timeout comes last so a same-step failure is
	// not reported as success.
	return []termination.Condition{
		termination.NewUnreachHeading(cfg.CheckIntervalSec, cfg.HeadingToleranceDeg),
		termination.NewExtremeState(cfg.RollLimitRad, cfg.PitchLimitRad),
		termination.NewOverload(cfg.AccelerationLimitX, cfg.AccelerationLimitY, cfg.AccelerationLimitZ),
		termination.NewLowAltitude(cfg.AltitudeFloorFt),
		termination.NewTimeout(cfg.MaxEpisodeSec),
	}
}
