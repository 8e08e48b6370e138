package simulation

import (
	"google.golang.org/protobuf/types/known/emptypb"
	"google.golang.org/protobuf/types/known/structpb"
	"google.golang.org/protobuf/types/known/wrapperspb"

	"github.com/lao-tseu-is-alive/go-flock-walls/pkg/geometry"
)

// Messages understood by FlockActor:
//
//	*wrapperspb.DoubleValue  tick, the value is dt
//	*structpb.Struct         spawn one boid at fields "x" and "y"
//	*emptypb.Empty           reset the scene

// TickMessage advances the flock by dt.
func TickMessage(dt float64) *wrapperspb.DoubleValue {
	return wrapperspb.Double(dt)
}

// SpawnMessage adds a boid at (x, y).
func SpawnMessage(x, y float64) *structpb.Struct {
	return &structpb.Struct{Fields: map[string]*structpb.Value{
		"x": structpb.NewNumberValue(x),
		"y": structpb.NewNumberValue(y),
	}}
}

// ResetMessage rebuilds the scene from its config.
func ResetMessage() *emptypb.Empty {
	return &emptypb.Empty{}
}

// spawnPosition reads the point of a spawn message.
func spawnPosition(msg *structpb.Struct) (geometry.Vector2D, bool) {
	x, okX := msg.GetFields()["x"]
	y, okY := msg.GetFields()["y"]
	if !okX || !okY {
		return geometry.Zero, false
	}
	if _, isNum := x.GetKind().(*structpb.Value_NumberValue); !isNum {
		return geometry.Zero, false
	}
	if _, isNum := y.GetKind().(*structpb.Value_NumberValue); !isNum {
		return geometry.Zero, false
	}
	return geometry.Vector2D{X: x.GetNumberValue(), Y: y.GetNumberValue()}, true
}
