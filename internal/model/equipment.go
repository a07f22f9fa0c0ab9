package model

// Equipment represents one repairable unit.
type Equipment struct {
	ID                  int    `json:"id"`
	Name                string `json:"name"`
	EquipmentType       string `json:"equipmentType"`
	Manufacturer        string `json:"manufacturer"`
	Model               string `json:"model"`
	SerialNumber        string `json:"serialNumber"`
	Location            string `json:"location"`
	DateInstalled       *Date  `json:"dateInstalled"`
	LastMaintenanceDate *Date  `json:"lastMaintenanceDate"`
}

// EquipmentTable is the wrapper the list endpoint returns.
type EquipmentTable struct {
	Equipment []Equipment `json:"equipment_table"`
}
