// Package models contains the GORM persistence models and their
// conversions to and from domain entities. Domain entities never
// carry persistence concerns; mapping lives here.
package models
