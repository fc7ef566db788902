// Package model defines the Animal entity, the payload it is created from and
// the row it is persisted as, together with the mappers between them.
package model
