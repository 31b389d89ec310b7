// Package grove animates the files of a live repository activity view.
//
// Every tracked file is a [File]: it eases toward a target anchored on its
// directory, flashes a touch color on activity, fades out when idle and is
// collected once fully faded. Grove owns that per-file lifecycle and leaves
// tree layout, cameras and windowing to the host.
//
// # Quick start
//
// A [Simulation] owns the files, their directories and the pending-removal
// [Registry]. Drive it once per frame:
//
//	sim := grove.NewSimulation(grove.DefaultSettings())
//	defer sim.Close()
//
//	// each frame:
//	sim.Touch("src/main.go", grove.ColorModify) // for every activity event
//	sim.Update(dt)
//	sim.Sweep()                                  // collect faded files
//
// # Lifecycle
//
// A file is created hidden and shows on its first touch. After
// [Settings.IdleTime] seconds without a touch it fades out over one second;
// once fully faded it marks itself expiring and joins the registry. Touching
// an expiring file takes it back out. [Simulation.Sweep] disposes whatever
// is still registered. [File.Remove] fast-forwards a file into its fade, and
// with force skips the fade entirely.
//
// Each file runs its own clock. A hidden file's clock is held at zero, so
// hidden files never expire.
//
// # Drawing
//
// [File.DrawState] reports position, color, alpha and label for a frame;
// [DrawFile] renders it with [Ebitengine]. Labels come from a [FontManager]
// passed with [WithFontManager].
//
// # Integration
//
// Lifecycle transitions can be forwarded to an [EventSink] (see the ecs
// package for a [Donburi] adapter), counted with [NewMetrics] for Prometheus,
// and logged through [WithLogger] using zerolog. Fades are shaped by
// [gween] easing functions.
//
// [Ebitengine]: https://ebitengine.org
// [gween]: https://github.com/tanema/gween
// [Donburi]: https://github.com/yohamta/donburi
package grove
