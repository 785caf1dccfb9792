package entity

// PlaceType is a closed set of place categories. Values match the
// place_type enum in the database.
type PlaceType string

const (
	TypeRestaurant    PlaceType = "restaurant"
	TypeCafe          PlaceType = "cafe"
	TypePark          PlaceType = "park"
	TypeMuseum        PlaceType = "museum"
	TypeBeach         PlaceType = "beach"
	TypeTemple        PlaceType = "temple"
	TypeMarket        PlaceType = "market"
	TypeShoppingMall  PlaceType = "shopping_mall"
	TypeHotel         PlaceType = "hotel"
	TypeAttraction    PlaceType = "attraction"
	TypeBar           PlaceType = "bar"
	TypeNightlife     PlaceType = "nightlife"
	TypeEntertainment PlaceType = "entertainment"
	TypeCulturalSite  PlaceType = "cultural_site"
	TypeNature        PlaceType = "nature"
	TypeOther         PlaceType = "other"
)

// City is a closed set of major Vietnamese cities. Values match the
// vietnamese_city enum in the database.
type City string

const (
	CityHoChiMinh   City = "Ho Chi Minh City"
	CityHanoi       City = "Hanoi"
	CityDaNang      City = "Da Nang"
	CityHaiPhong    City = "Hai Phong"
	CityCanTho      City = "Can Tho"
	CityBienHoa     City = "Bien Hoa"
	CityHue         City = "Hue"
	CityNhaTrang    City = "Nha Trang"
	CityBuonMaThuot City = "Buon Ma Thuot"
	CityQuyNhon     City = "Quy Nhon"
	CityVungTau     City = "Vung Tau"
	CityNamDinh     City = "Nam Dinh"
	CityPhanThiet   City = "Phan Thiet"
	CityLongXuyen   City = "Long Xuyen"
	CityThaiNguyen  City = "Thai Nguyen"
	CityThanhHoa    City = "Thanh Hoa"
	CityRachGia     City = "Rach Gia"
	CityCamRanh     City = "Cam Ranh"
	CityVinhLong    City = "Vinh Long"
	CityMyTho       City = "My Tho"
)

var PlaceTypes = []PlaceType{
	TypeRestaurant, TypeCafe, TypePark, TypeMuseum,
	TypeBeach, TypeTemple, TypeMarket, TypeShoppingMall,
	TypeHotel, TypeAttraction, TypeBar, TypeNightlife,
	TypeEntertainment, TypeCulturalSite, TypeNature, TypeOther,
}

var Cities = []City{
	CityHoChiMinh, CityHanoi, CityDaNang, CityHaiPhong,
	CityCanTho, CityBienHoa, CityHue, CityNhaTrang,
	CityBuonMaThuot, CityQuyNhon, CityVungTau, CityNamDinh,
	CityPhanThiet, CityLongXuyen, CityThaiNguyen, CityThanhHoa,
	CityRachGia, CityCamRanh, CityVinhLong, CityMyTho,
}

func (t PlaceType) Valid() bool {
	for _, v := range PlaceTypes {
		if t == v {
			return true
		}
	}
	return false
}

func (c City) Valid() bool {
	for _, v := range Cities {
		if c == v {
			return true
		}
	}
	return false
}
