// Package entities reconstructs drawing entities from group streams and
// renders them back.
//
// Every entity type embeds Common for the fields shared by all entities
// (handle, layer, color and so on) and adds its own typed fields. Optional
// fields are pointers so that an absent group and a zero value stay
// distinguishable across a round trip.
//
// Entity kinds are looked up through a registry keyed by the record name
// that follows a code 0 group. Callers can extend the registry with
// Register to teach the parser new kinds without modifying this package.
package entities
