package entities

// DeliveryRequestView is a request enriched with display data of the
// parties. Customer and Transporter are nil when the directory could not
// resolve them.
type DeliveryRequestView struct {
	DeliveryRequest
	Customer    *UserInfo
	Transporter *UserInfo
}

type ApplicationView struct {
	DeliveryApplication
	Transporter *UserInfo
	Stats       TransporterStats
}
