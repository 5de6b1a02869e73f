package domain

type Airport struct {
	Code    string `json:"code"`
	Name    string `json:"name"`
	City    string `json:"city"`
	Country string `json:"country"`
}

type Airline struct {
	Code                  string `json:"code"`
	Name                  string `json:"name"`
	OperatesDomestic      bool   `json:"operates_domestic"`
	OperatesInternational bool   `json:"operates_international"`
}
