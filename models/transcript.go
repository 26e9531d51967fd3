package models

// Transcript maps an indicator+gender combination to the sets of reasons
// explaining a raised or lowered value
type Transcript struct {
	Name      string `json:"name"`
	Gender    string `json:"gender"`
	RaisesIds []int  `json:"raisesIds"`
	FallsIds  []int  `json:"fallsIds"`
}
