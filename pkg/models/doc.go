// Package models provides the shared data types of fileicons.
//
// An [Association] ties a file extension such as ".fspy" to an icon image.
// A [List] keeps associations in row order:
//
//	list := models.List{
//	    {Extension: ".xcf", IconPath: "gimp.png"},
//	    {Extension: ".fspy", IconPath: "fspy.ico"},
//	}
//	i := list.Find(".xcf") // 0
//
// Duplicate extensions are allowed; the first one in list order wins.
package models
