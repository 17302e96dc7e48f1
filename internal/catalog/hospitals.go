package catalog

import "remedyai/internal/model"

// Static hospital directory around the Pyeongtaek campus area.
// Reference data only - there is no ingestion pipeline behind it.
var hospitals = []model.Hospital{
	{Name: "허리편한병원 (정형외과)", Lat: 36.994484, Lng: 127.142371, Phone: "031-656-2110"},
	{Name: "평택대학교 보건진료소", Lat: 36.994500, Lng: 127.142400, Phone: "031-659-8119"},
	{Name: "평택서울정형외과의원 (정형외과)", Lat: 36.990000, Lng: 127.110000, Phone: "031-655-1234"},
	{Name: "연세우리내과의원 (내과)", Lat: 36.991500, Lng: 127.113000, Phone: "031-658-5678"},
	{Name: "한빛치과의원 (치과)", Lat: 36.990500, Lng: 127.111500, Phone: "031-651-2345"},
	{Name: "삼성안과의원 (안과)", Lat: 36.991800, Lng: 127.114000, Phone: "031-653-3456"},
	{Name: "평택이비인후과의원 (이비인후과)", Lat: 36.990800, Lng: 127.112000, Phone: "031-654-4567"},
	{Name: "서울산부인과의원 (산부인과)", Lat: 36.992200, Lng: 127.115500, Phone: "031-652-5678"},
	{Name: "평택한의원 (한의원)", Lat: 36.991000, Lng: 127.113000, Phone: "031-655-6789"},
	{Name: "굿모닝병원 (종합병원)", Lat: 36.992500, Lng: 127.112500, Phone: "031-659-7200"},
	{Name: "굿모닝병원 응급의료센터", Lat: 36.990818, Lng: 127.120396, Phone: "031-659-7200"},
}

// Hospitals returns a copy of the static hospital directory
func Hospitals() []model.Hospital {
	out := make([]model.Hospital, len(hospitals))
	copy(out, hospitals)
	return out
}
