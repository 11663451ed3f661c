// Package photogesture is the gesture engine behind a zoomable photo viewer.
//
// A [Controller] turns raw pointer input into a translation and scale for a
// single displayed image: one-finger or mouse drag pans, two-finger pinch or
// the wheel zooms, double tap toggles zoom, and dragging past an edge hands
// the gesture to the surrounding viewer through reach callbacks (for example
// to dismiss an overlay). On release the image slides to rest inside its
// bounds.
//
// # Quick start
//
//	ctrl := photogesture.NewController(photogesture.DefaultConfig(), nil)
//	ctrl.SetGeometry(photogesture.FitGeometry(natW, natH, viewport))
//	ctrl.OnReachBottomMove = func(x, y float64) { /* fade the backdrop */ }
//	ctrl.OnPhotoTap = func(x, y float64) { /* toggle chrome */ }
//
//	// per frame
//	input.Update()     // photogesture.InputSource polling ebiten
//	ctrl.Update()      // delivers single taps whose window ran out
//	shown := tween.Update(ctrl.Transform(), ctrl.Touched(), dt)
//
// # Model
//
// The controller is single-threaded and event driven. It never starts
// goroutines or timers; time comes from a [Clock], and the only temporal
// behavior (move throttling, the double-tap window, momentum velocity) is
// computed from timestamps. Hosts that are not ebiten games can skip
// [InputSource] and call [Controller.Start], [Controller.Move],
// [Controller.End] and [Controller.Wheel] directly.
//
// Transform.X and Transform.Y are offsets from the image being centered in
// [ImageGeometry.Viewport]. Render with translate(X, Y) then scale(Scale)
// around the image center.
//
// # Host helpers
//
// [TransformTween] eases the displayed transform toward the target (via
// [gween]) and snaps while the image is touched. [NaturalSize] and
// [FitGeometry] build geometry from an image file, and [Orientation.GeoM]
// draws it upright. [ScriptRunner] replays
// JSON gesture scripts for automated tests. The ecs subpackage forwards
// gesture events into a [Donburi] world.
//
// [gween]: https://github.com/tanema/gween
// [Donburi]: https://github.com/yohamta/donburi
package photogesture
