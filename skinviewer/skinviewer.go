// Package skinviewer renders the front view of a Minecraft skin texture:
// head, torso, both arms and both legs, each with its overlay layer, laid
// out as a flat portrait. LD (64x32), SD (64x64) and HD (128x128) textures
// are supported, for both the classic and the slim model.
package skinviewer
