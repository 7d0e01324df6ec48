// Package model defines domain data structures shared across the app: catalog
// content items and the state enums of the view machine, the background audio
// controller and the player. Values are plain structs intended for direct use
// by the UI.
package model
