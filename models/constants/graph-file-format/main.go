package graphFileFormat

import "g2p/api/models/constants"

/*
	Recognized graph file serializations, keyed by
	file extension.
*/
const (
	Turtle constants.GraphFileFormat = ".ttl"
	RdfXml constants.GraphFileFormat = ".xml"
)
