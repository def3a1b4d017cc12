// Package raster holds the two-valued pixel grid the decoder works on and the
// stages that produce it: binarization of a grayscale raster at a fixed
// downsampling scale, and removal of the border the source format draws
// around its content.
package raster
