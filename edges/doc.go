// Package edges turns a raster image into the unordered edge-point set the
// tour builder consumes.
//
// Pipeline (Extract):
//
//  1. Grayscale: each pixel becomes the plain average of its R, G and B.
//  2. Sobel: 3×3 gradient magnitude, binarised against a threshold; the
//     one-pixel border has no full neighbourhood and is always black.
//  3. Points: every non-black pixel becomes a 2-D point (x, y) relative to
//     the image's top-left corner, in row-major order.
//
// Decode accepts PNG, JPEG, GIF and BMP.
package edges
