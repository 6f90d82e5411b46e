package constants

/*
	Defines a set of base level
	constants and enums to be used
	throughout the G2P service and
	its associated components.
*/
type FilterRole string

type GraphFileFormat string
