package models

// SysIDRecord is one record from the sys_id JSON export. CreatedBy and
// CreatedOn identify the link row the record belongs to; Interaction and
// Task carry the platform sys_ids.
type SysIDRecord struct {
	CreatedBy   string `json:"sys_created_by"`
	CreatedOn   string `json:"sys_created_on"`
	Interaction string `json:"interaction"`
	Task        string `json:"task"`
}
