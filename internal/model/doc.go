// Package model defines the destination entity types built from exported
// relation records, and the registry that maps type identifiers to them.
//
// Attribute names are the json tags. Nullable foreign keys are pointers so a
// user reference that could not be mapped stays null instead of becoming 0.
// Types that embed ImportState support the importing marker.
package model
