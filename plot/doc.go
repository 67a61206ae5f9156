// Package plot adapts a finished tour to a two-axis drawing device.
//
//   - Fit maps image-space points into the device's drawable area,
//     stretching by default (as the device resolution rarely matches the
//     image) or preserving aspect ratio and centring on request.
//   - Compact drops consecutive repeats that scaling may introduce.
//   - JCode emits plotter instructions: one pen-down stroke that follows
//     the whole path, thinned to a minimum waypoint spacing.
//   - Render rasterises the path so a run can be inspected without a device.
//
// All functions expect 2-D points.
package plot
