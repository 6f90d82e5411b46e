package filterRole

import "g2p/api/models/constants"

/*
	The three roles an association search criterion can target.
	Role names double as the query variable names for each
	entity and its label (`<role>` / `<role>_label`).
*/
const (
	Feature     constants.FilterRole = "feature"
	Environment constants.FilterRole = "environment"
	Phenotype   constants.FilterRole = "phenotype"
)
