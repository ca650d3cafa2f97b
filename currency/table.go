package currency

// ISO 4217 table.
// Source: http://www.currency-iso.org/
// Symbols: http://www.xe.com/symbols.php
//
// Codes with a numeric value of N/A keep the literal "Nil".
var currencies = map[string]Currency{
	"AED": {
		Code:      "AED",
		Numeric:   "784",
		Name:      "UAE Dirham",
		Decimals:  2,
		Countries: []string{"UNITED ARAB EMIRATES"},
	},
	"AFN": {
		Code:      "AFN",
		Numeric:   "971",
		Name:      "Afghani",
		Symbol:    "؋",
		Decimals:  2,
		Countries: []string{"AFGHANISTAN"},
	},
	"ALL": {
		Code:      "ALL",
		Numeric:   "008",
		Name:      "Lek",
		Symbol:    "Lek",
		Decimals:  2,
		Countries: []string{"ALBANIA"},
	},
	"AMD": {
		Code:      "AMD",
		Numeric:   "051",
		Name:      "Armenian Dram",
		Decimals:  2,
		Countries: []string{"ARMENIA"},
	},
	"ANG": {
		Code:      "ANG",
		Numeric:   "532",
		Name:      "Netherlands Antillean Guilder",
		Symbol:    "ƒ",
		Decimals:  2,
		Countries: []string{
			"CURAÇAO",
			"SINT MAARTEN (DUTCH PART)",
		},
	},
	"AOA": {
		Code:      "AOA",
		Numeric:   "973",
		Name:      "Kwanza",
		Decimals:  2,
		Countries: []string{"ANGOLA"},
	},
	"ARS": {
		Code:      "ARS",
		Numeric:   "032",
		Name:      "Argentine Peso",
		Symbol:    "$",
		Decimals:  2,
		Countries: []string{"ARGENTINA"},
	},
	"AUD": {
		Code:      "AUD",
		Numeric:   "036",
		Name:      "Australian Dollar",
		Symbol:    "$",
		Decimals:  2,
		Countries: []string{
			"AUSTRALIA",
			"CHRISTMAS ISLAND",
			"COCOS (KEELING) ISLANDS",
			"HEARD ISLAND AND McDONALD ISLANDS",
			"KIRIBATI",
			"NAURU",
			"NORFOLK ISLAND",
			"TUVALU",
		},
	},
	"AWG": {
		Code:      "AWG",
		Numeric:   "533",
		Name:      "Aruban Florin",
		Symbol:    "ƒ",
		Decimals:  2,
		Countries: []string{"ARUBA"},
	},
	"AZN": {
		Code:      "AZN",
		Numeric:   "944",
		Name:      "Azerbaijanian Manat",
		Symbol:    "ман",
		Decimals:  2,
		Countries: []string{"AZERBAIJAN"},
	},
	"BAM": {
		Code:      "BAM",
		Numeric:   "977",
		Name:      "Convertible Mark",
		Symbol:    "KM",
		Decimals:  2,
		Countries: []string{"BOSNIA AND HERZEGOVINA"},
	},
	"BBD": {
		Code:      "BBD",
		Numeric:   "052",
		Name:      "Barbados Dollar",
		Symbol:    "$",
		Decimals:  2,
		Countries: []string{"BARBADOS"},
	},
	"BDT": {
		Code:      "BDT",
		Numeric:   "050",
		Name:      "Taka",
		Decimals:  2,
		Countries: []string{"BANGLADESH"},
	},
	"BGN": {
		Code:      "BGN",
		Numeric:   "975",
		Name:      "Bulgarian Lev",
		Symbol:    "лв",
		Decimals:  2,
		Countries: []string{"BULGARIA"},
	},
	"BHD": {
		Code:      "BHD",
		Numeric:   "048",
		Name:      "Bahraini Dinar",
		Decimals:  3,
		Countries: []string{"BAHRAIN"},
	},
	"BIF": {
		Code:      "BIF",
		Numeric:   "108",
		Name:      "Burundi Franc",
		Decimals:  0,
		Countries: []string{"BURUNDI"},
	},
	"BMD": {
		Code:      "BMD",
		Numeric:   "060",
		Name:      "Bermudian Dollar",
		Symbol:    "$",
		Decimals:  2,
		Countries: []string{"BERMUDA"},
	},
	"BND": {
		Code:      "BND",
		Numeric:   "096",
		Name:      "Brunei Dollar",
		Symbol:    "$",
		Decimals:  2,
		Countries: []string{"BRUNEI DARUSSALAM"},
	},
	"BOB": {
		Code:      "BOB",
		Numeric:   "068",
		Name:      "Boliviano",
		Symbol:    "$b",
		Decimals:  2,
		Countries: []string{"BOLIVIA, PLURINATIONAL STATE OF"},
	},
	"BOV": {
		Code:      "BOV",
		Numeric:   "984",
		Name:      "Mvdol",
		Decimals:  2,
		Countries: []string{"BOLIVIA, PLURINATIONAL STATE OF"},
	},
	"BRL": {
		Code:      "BRL",
		Numeric:   "986",
		Name:      "Brazilian Real",
		Symbol:    "R$",
		Decimals:  2,
		Countries: []string{"BRAZIL"},
	},
	"BSD": {
		Code:      "BSD",
		Numeric:   "044",
		Name:      "Bahamian Dollar",
		Symbol:    "$",
		Decimals:  2,
		Countries: []string{"BAHAMAS"},
	},
	"BTN": {
		Code:      "BTN",
		Numeric:   "064",
		Name:      "Ngultrum",
		Decimals:  2,
		Countries: []string{"BHUTAN"},
	},
	"BWP": {
		Code:      "BWP",
		Numeric:   "072",
		Name:      "Pula",
		Symbol:    "P",
		Decimals:  2,
		Countries: []string{"BOTSWANA"},
	},
	"BYR": {
		Code:      "BYR",
		Numeric:   "974",
		Name:      "Belarussian Ruble",
		Symbol:    "p.",
		Decimals:  0,
		Countries: []string{"BELARUS"},
	},
	"BZD": {
		Code:      "BZD",
		Numeric:   "084",
		Name:      "Belize Dollar",
		Symbol:    "BZ$",
		Decimals:  2,
		Countries: []string{"BELIZE"},
	},
	"CAD": {
		Code:      "CAD",
		Numeric:   "124",
		Name:      "Canadian Dollar",
		Symbol:    "$",
		Decimals:  2,
		Countries: []string{"CANADA"},
	},
	"CDF": {
		Code:      "CDF",
		Numeric:   "976",
		Name:      "Congolese Franc",
		Decimals:  2,
		Countries: []string{"CONGO, THE DEMOCRATIC REPUBLIC OF"},
	},
	"CHE": {
		Code:      "CHE",
		Numeric:   "947",
		Name:      "WIR Euro",
		Decimals:  2,
		Countries: []string{"SWITZERLAND"},
	},
	"CHF": {
		Code:      "CHF",
		Numeric:   "756",
		Name:      "Swiss Franc",
		Symbol:    "Fr.",
		Decimals:  2,
		Countries: []string{
			"LIECHTENSTEIN",
			"SWITZERLAND",
		},
	},
	"CHW": {
		Code:      "CHW",
		Numeric:   "948",
		Name:      "WIR Franc",
		Decimals:  2,
		Countries: []string{"SWITZERLAND"},
	},
	"CLF": {
		Code:      "CLF",
		Numeric:   "990",
		Name:      "Unidades de fomento",
		Decimals:  0,
		Countries: []string{"CHILE"},
	},
	"CLP": {
		Code:      "CLP",
		Numeric:   "152",
		Name:      "Chilean Peso",
		Symbol:    "$",
		Decimals:  0,
		Countries: []string{"CHILE"},
	},
	"CNY": {
		Code:      "CNY",
		Numeric:   "156",
		Name:      "Yuan Renminbi",
		Symbol:    "¥",
		Decimals:  2,
		Countries: []string{"CHINA"},
	},
	"COP": {
		Code:      "COP",
		Numeric:   "170",
		Name:      "Colombian Peso",
		Symbol:    "$",
		Decimals:  2,
		Countries: []string{"COLOMBIA"},
	},
	"COU": {
		Code:      "COU",
		Numeric:   "970",
		Name:      "Unidad de Valor Real",
		Decimals:  2,
		Countries: []string{"COLOMBIA"},
	},
	"CRC": {
		Code:      "CRC",
		Numeric:   "188",
		Name:      "Costa Rican Colon",
		Symbol:    "₡",
		Decimals:  2,
		Countries: []string{"COSTA RICA"},
	},
	"CUC": {
		Code:      "CUC",
		Numeric:   "931",
		Name:      "Peso Convertible",
		Decimals:  2,
		Countries: []string{"CUBA"},
	},
	"CUP": {
		Code:      "CUP",
		Numeric:   "192",
		Name:      "Cuban Peso",
		Symbol:    "₱",
		Decimals:  2,
		Countries: []string{"CUBA"},
	},
	"CVE": {
		Code:      "CVE",
		Numeric:   "132",
		Name:      "Cape Verde Escudo",
		Decimals:  2,
		Countries: []string{"CAPE VERDE"},
	},
	"CZK": {
		Code:      "CZK",
		Numeric:   "203",
		Name:      "Czech Koruna",
		Symbol:    "Kč",
		Decimals:  2,
		Countries: []string{"CZECH REPUBLIC"},
	},
	"DJF": {
		Code:      "DJF",
		Numeric:   "262",
		Name:      "Djibouti Franc",
		Decimals:  0,
		Countries: []string{"DJIBOUTI"},
	},
	"DKK": {
		Code:      "DKK",
		Numeric:   "208",
		Name:      "Danish Krone",
		Symbol:    "kr",
		Decimals:  2,
		Countries: []string{
			"DENMARK",
			"FAROE ISLANDS",
			"GREENLAND",
		},
	},
	"DOP": {
		Code:      "DOP",
		Numeric:   "214",
		Name:      "Dominican Peso",
		Symbol:    "RD$",
		Decimals:  2,
		Countries: []string{"DOMINICAN REPUBLIC"},
	},
	"DZD": {
		Code:      "DZD",
		Numeric:   "012",
		Name:      "Algerian Dinar",
		Decimals:  2,
		Countries: []string{"ALGERIA"},
	},
	"EGP": {
		Code:      "EGP",
		Numeric:   "818",
		Name:      "Egyptian Pound",
		Symbol:    "£",
		Decimals:  2,
		Countries: []string{"EGYPT"},
	},
	"ERN": {
		Code:      "ERN",
		Numeric:   "232",
		Name:      "Nakfa",
		Decimals:  2,
		Countries: []string{"ERITREA"},
	},
	"ETB": {
		Code:      "ETB",
		Numeric:   "230",
		Name:      "Ethiopian Birr",
		Decimals:  2,
		Countries: []string{"ETHIOPIA"},
	},
	"EUR": {
		Code:      "EUR",
		Numeric:   "978",
		Name:      "Euro",
		Symbol:    "€",
		Decimals:  2,
		Countries: []string{
			"ÅLAND ISLANDS",
			"ANDORRA",
			"AUSTRIA",
			"BELGIUM",
			"CYPRUS",
			"ESTONIA",
			"EUROPEAN UNION ",
			"FINLAND",
			"FRANCE",
			"FRENCH GUIANA",
			"FRENCH SOUTHERN TERRITORIES",
			"GERMANY",
			"GREECE",
			"GUADELOUPE",
			"HOLY SEE (VATICAN CITY STATE)",
			"IRELAND",
			"ITALY",
			"LUXEMBOURG",
			"MALTA",
			"MARTINIQUE",
			"MAYOTTE",
			"MONACO",
			"MONTENEGRO",
			"NETHERLANDS",
			"PORTUGAL",
			"RÉUNION",
			"SAINT BARTHÉLEMY",
			"SAINT MARTIN (FRENCH PART)",
			"SAINT PIERRE AND MIQUELON",
			"SAN MARINO",
			"SLOVAKIA",
			"SLOVENIA",
			"SPAIN",
			"Vatican City State (HOLY SEE)",
		},
	},
	"FJD": {
		Code:      "FJD",
		Numeric:   "242",
		Name:      "Fiji Dollar",
		Symbol:    "$",
		Decimals:  2,
		Countries: []string{"FIJI"},
	},
	"FKP": {
		Code:      "FKP",
		Numeric:   "238",
		Name:      "Falkland Islands Pound",
		Symbol:    "£",
		Decimals:  2,
		Countries: []string{"FALKLAND ISLANDS (MALVINAS)"},
	},
	"GBP": {
		Code:      "GBP",
		Numeric:   "826",
		Name:      "Pound Sterling",
		Symbol:    "£",
		Decimals:  2,
		Countries: []string{
			"GUERNSEY",
			"ISLE OF MAN",
			"JERSEY",
			"UNITED KINGDOM",
		},
	},
	"GEL": {
		Code:      "GEL",
		Numeric:   "981",
		Name:      "Lari",
		Decimals:  2,
		Countries: []string{"GEORGIA"},
	},
	"GHS": {
		Code:      "GHS",
		Numeric:   "936",
		Name:      "Ghana Cedi",
		Decimals:  2,
		Countries: []string{"GHANA"},
	},
	"GIP": {
		Code:      "GIP",
		Numeric:   "292",
		Name:      "Gibraltar Pound",
		Symbol:    "£",
		Decimals:  2,
		Countries: []string{"GIBRALTAR"},
	},
	"GMD": {
		Code:      "GMD",
		Numeric:   "270",
		Name:      "Dalasi",
		Decimals:  2,
		Countries: []string{"GAMBIA"},
	},
	"GNF": {
		Code:      "GNF",
		Numeric:   "324",
		Name:      "Guinea Franc",
		Decimals:  0,
		Countries: []string{"GUINEA"},
	},
	"GTQ": {
		Code:      "GTQ",
		Numeric:   "320",
		Name:      "Quetzal",
		Symbol:    "Q",
		Decimals:  2,
		Countries: []string{"GUATEMALA"},
	},
	"GYD": {
		Code:      "GYD",
		Numeric:   "328",
		Name:      "Guyana Dollar",
		Symbol:    "$",
		Decimals:  2,
		Countries: []string{"GUYANA"},
	},
	"HKD": {
		Code:      "HKD",
		Numeric:   "344",
		Name:      "Hong Kong Dollar",
		Symbol:    "HK$",
		Decimals:  2,
		Countries: []string{"HONG KONG"},
	},
	"HNL": {
		Code:      "HNL",
		Numeric:   "340",
		Name:      "Lempira",
		Symbol:    "L",
		Decimals:  2,
		Countries: []string{"HONDURAS"},
	},
	"HRK": {
		Code:      "HRK",
		Numeric:   "191",
		Name:      "Croatian Kuna",
		Symbol:    "kn",
		Decimals:  2,
		Countries: []string{"CROATIA"},
	},
	"HTG": {
		Code:      "HTG",
		Numeric:   "332",
		Name:      "Gourde",
		Decimals:  2,
		Countries: []string{"HAITI"},
	},
	"HUF": {
		Code:      "HUF",
		Numeric:   "348",
		Name:      "Forint",
		Symbol:    "Ft",
		Decimals:  2,
		Countries: []string{"HUNGARY"},
	},
	"IDR": {
		Code:      "IDR",
		Numeric:   "360",
		Name:      "Rupiah",
		Symbol:    "Rp",
		Decimals:  2,
		Countries: []string{"INDONESIA"},
	},
	"ILS": {
		Code:      "ILS",
		Numeric:   "376",
		Name:      "New Israeli Sheqel",
		Symbol:    "₪",
		Decimals:  2,
		Countries: []string{"ISRAEL"},
	},
	"INR": {
		Code:      "INR",
		Numeric:   "356",
		Name:      "Indian Rupee",
		Decimals:  2,
		Countries: []string{
			"BHUTAN",
			"INDIA",
		},
	},
	"IQD": {
		Code:      "IQD",
		Numeric:   "368",
		Name:      "Iraqi Dinar",
		Decimals:  3,
		Countries: []string{"IRAQ"},
	},
	"IRR": {
		Code:      "IRR",
		Numeric:   "364",
		Name:      "Iranian Rial",
		Symbol:    "﷼",
		Decimals:  2,
		Countries: []string{"IRAN, ISLAMIC REPUBLIC OF"},
	},
	"ISK": {
		Code:      "ISK",
		Numeric:   "352",
		Name:      "Iceland Krona",
		Symbol:    "kr",
		Decimals:  0,
		Countries: []string{"ICELAND"},
	},
	"JMD": {
		Code:      "JMD",
		Numeric:   "388",
		Name:      "Jamaican Dollar",
		Symbol:    "J$",
		Decimals:  2,
		Countries: []string{"JAMAICA"},
	},
	"JOD": {
		Code:      "JOD",
		Numeric:   "400",
		Name:      "Jordanian Dinar",
		Decimals:  3,
		Countries: []string{"JORDAN"},
	},
	"JPY": {
		Code:      "JPY",
		Numeric:   "392",
		Name:      "Yen",
		Symbol:    "¥",
		Decimals:  0,
		Countries: []string{"JAPAN"},
	},
	"KES": {
		Code:      "KES",
		Numeric:   "404",
		Name:      "Kenyan Shilling",
		Decimals:  2,
		Countries: []string{"KENYA"},
	},
	"KGS": {
		Code:      "KGS",
		Numeric:   "417",
		Name:      "Som",
		Symbol:    "лв",
		Decimals:  2,
		Countries: []string{"KYRGYZSTAN"},
	},
	"KHR": {
		Code:      "KHR",
		Numeric:   "116",
		Name:      "Riel",
		Symbol:    "៛",
		Decimals:  2,
		Countries: []string{"CAMBODIA"},
	},
	"KMF": {
		Code:      "KMF",
		Numeric:   "174",
		Name:      "Comoro Franc",
		Decimals:  0,
		Countries: []string{"COMOROS"},
	},
	"KPW": {
		Code:      "KPW",
		Numeric:   "408",
		Name:      "North Korean Won",
		Symbol:    "₩",
		Decimals:  2,
		Countries: []string{"KOREA, DEMOCRATIC PEOPLE’S REPUBLIC OF"},
	},
	"KRW": {
		Code:      "KRW",
		Numeric:   "410",
		Name:      "Won",
		Symbol:    "₩",
		Decimals:  0,
		Countries: []string{"KOREA, REPUBLIC OF"},
	},
	"KWD": {
		Code:      "KWD",
		Numeric:   "414",
		Name:      "Kuwaiti Dinar",
		Decimals:  3,
		Countries: []string{"KUWAIT"},
	},
	"KYD": {
		Code:      "KYD",
		Numeric:   "136",
		Name:      "Cayman Islands Dollar",
		Symbol:    "$",
		Decimals:  2,
		Countries: []string{"CAYMAN ISLANDS"},
	},
	"KZT": {
		Code:      "KZT",
		Numeric:   "398",
		Name:      "Tenge",
		Symbol:    "лв",
		Decimals:  2,
		Countries: []string{"KAZAKHSTAN"},
	},
	"LAK": {
		Code:      "LAK",
		Numeric:   "418",
		Name:      "Kip",
		Symbol:    "₭",
		Decimals:  2,
		Countries: []string{"LAO PEOPLE’S DEMOCRATIC REPUBLIC"},
	},
	"LBP": {
		Code:      "LBP",
		Numeric:   "422",
		Name:      "Lebanese Pound",
		Symbol:    "£",
		Decimals:  2,
		Countries: []string{"LEBANON"},
	},
	"LKR": {
		Code:      "LKR",
		Numeric:   "144",
		Name:      "Sri Lanka Rupee",
		Symbol:    "₨",
		Decimals:  2,
		Countries: []string{"SRI LANKA"},
	},
	"LRD": {
		Code:      "LRD",
		Numeric:   "430",
		Name:      "Liberian Dollar",
		Symbol:    "$",
		Decimals:  2,
		Countries: []string{"LIBERIA"},
	},
	"LSL": {
		Code:      "LSL",
		Numeric:   "426",
		Name:      "Loti",
		Decimals:  2,
		Countries: []string{"LESOTHO"},
	},
	"LTL": {
		Code:      "LTL",
		Numeric:   "440",
		Name:      "Lithuanian Litas",
		Symbol:    "Lt",
		Decimals:  2,
		Countries: []string{"LITHUANIA"},
	},
	"LVL": {
		Code:      "LVL",
		Numeric:   "428",
		Name:      "Latvian Lats",
		Symbol:    "Ls",
		Decimals:  2,
		Countries: []string{"LATVIA"},
	},
	"LYD": {
		Code:      "LYD",
		Numeric:   "434",
		Name:      "Libyan Dinar",
		Decimals:  3,
		Countries: []string{"LIBYA"},
	},
	"MAD": {
		Code:      "MAD",
		Numeric:   "504",
		Name:      "Moroccan Dirham",
		Decimals:  2,
		Countries: []string{
			"MOROCCO",
			"WESTERN SAHARA",
		},
	},
	"MDL": {
		Code:      "MDL",
		Numeric:   "498",
		Name:      "Moldovan Leu",
		Decimals:  2,
		Countries: []string{"MOLDOVA, REPUBLIC OF"},
	},
	"MGA": {
		Code:      "MGA",
		Numeric:   "969",
		Name:      "Malagasy Ariary",
		Decimals:  2,
		Countries: []string{"MADAGASCAR"},
	},
	"MKD": {
		Code:      "MKD",
		Numeric:   "807",
		Name:      "Denar",
		Symbol:    "ден",
		Decimals:  2,
		Countries: []string{"MACEDONIA, THE FORMER YUGOSLAV REPUBLIC OF"},
	},
	"MMK": {
		Code:      "MMK",
		Numeric:   "104",
		Name:      "Kyat",
		Symbol:    "K",
		Decimals:  2,
		Countries: []string{"MYANMAR"},
	},
	"MNT": {
		Code:      "MNT",
		Numeric:   "496",
		Name:      "Tugrik",
		Symbol:    "₮",
		Decimals:  2,
		Countries: []string{"MONGOLIA"},
	},
	"MOP": {
		Code:      "MOP",
		Numeric:   "446",
		Name:      "Pataca",
		Decimals:  2,
		Countries: []string{"MACAO"},
	},
	"MRO": {
		Code:      "MRO",
		Numeric:   "478",
		Name:      "Ouguiya",
		Decimals:  2,
		Countries: []string{"MAURITANIA"},
	},
	"MUR": {
		Code:      "MUR",
		Numeric:   "480",
		Name:      "Mauritius Rupee",
		Symbol:    "₨",
		Decimals:  2,
		Countries: []string{"MAURITIUS"},
	},
	"MVR": {
		Code:      "MVR",
		Numeric:   "462",
		Name:      "Rufiyaa",
		Decimals:  2,
		Countries: []string{"MALDIVES"},
	},
	"MWK": {
		Code:      "MWK",
		Numeric:   "454",
		Name:      "Kwacha",
		Decimals:  2,
		Countries: []string{"MALAWI"},
	},
	"MXN": {
		Code:      "MXN",
		Numeric:   "484",
		Name:      "Mexican Peso",
		Symbol:    "$",
		Decimals:  2,
		Countries: []string{"MEXICO"},
	},
	"MXV": {
		Code:      "MXV",
		Numeric:   "979",
		Name:      "Mexican Unidad de Inversion (UDI)",
		Decimals:  2,
		Countries: []string{"MEXICO"},
	},
	"MYR": {
		Code:      "MYR",
		Numeric:   "458",
		Name:      "Malaysian Ringgit",
		Symbol:    "RM",
		Decimals:  2,
		Countries: []string{"MALAYSIA"},
	},
	"MZN": {
		Code:      "MZN",
		Numeric:   "943",
		Name:      "Mozambique Metical",
		Symbol:    "MT",
		Decimals:  2,
		Countries: []string{"MOZAMBIQUE"},
	},
	"NAD": {
		Code:      "NAD",
		Numeric:   "516",
		Name:      "Namibia Dollar",
		Symbol:    "$",
		Decimals:  2,
		Countries: []string{"NAMIBIA"},
	},
	"NGN": {
		Code:      "NGN",
		Numeric:   "566",
		Name:      "Naira",
		Symbol:    "₦",
		Decimals:  2,
		Countries: []string{"NIGERIA"},
	},
	"NIO": {
		Code:      "NIO",
		Numeric:   "558",
		Name:      "Cordoba Oro",
		Symbol:    "C$",
		Decimals:  2,
		Countries: []string{"NICARAGUA"},
	},
	"NOK": {
		Code:      "NOK",
		Numeric:   "578",
		Name:      "Norwegian Krone",
		Symbol:    "kr",
		Decimals:  2,
		Countries: []string{
			"BOUVET ISLAND",
			"NORWAY",
			"SVALBARD AND JAN MAYEN",
		},
	},
	"NPR": {
		Code:      "NPR",
		Numeric:   "524",
		Name:      "Nepalese Rupee",
		Symbol:    "₨",
		Decimals:  2,
		Countries: []string{"NEPAL"},
	},
	"NZD": {
		Code:      "NZD",
		Numeric:   "554",
		Name:      "New Zealand Dollar",
		Symbol:    "$",
		Decimals:  2,
		Countries: []string{
			"COOK ISLANDS",
			"NEW ZEALAND",
			"NIUE",
			"PITCAIRN",
			"TOKELAU",
		},
	},
	"OMR": {
		Code:      "OMR",
		Numeric:   "512",
		Name:      "Rial Omani",
		Symbol:    "﷼",
		Decimals:  3,
		Countries: []string{"OMAN"},
	},
	"PAB": {
		Code:      "PAB",
		Numeric:   "590",
		Name:      "Balboa",
		Symbol:    "B/.",
		Decimals:  2,
		Countries: []string{"PANAMA"},
	},
	"PEN": {
		Code:      "PEN",
		Numeric:   "604",
		Name:      "Nuevo Sol",
		Symbol:    "S/.",
		Decimals:  2,
		Countries: []string{"PERU"},
	},
	"PGK": {
		Code:      "PGK",
		Numeric:   "598",
		Name:      "Kina",
		Decimals:  2,
		Countries: []string{"PAPUA NEW GUINEA"},
	},
	"PHP": {
		Code:      "PHP",
		Numeric:   "608",
		Name:      "Philippine Peso",
		Symbol:    "₱",
		Decimals:  2,
		Countries: []string{"PHILIPPINES"},
	},
	"PKR": {
		Code:      "PKR",
		Numeric:   "586",
		Name:      "Pakistan Rupee",
		Symbol:    "₨",
		Decimals:  2,
		Countries: []string{"PAKISTAN"},
	},
	"PLN": {
		Code:      "PLN",
		Numeric:   "985",
		Name:      "Zloty",
		Symbol:    "zł",
		Decimals:  2,
		Countries: []string{"POLAND"},
	},
	"PYG": {
		Code:      "PYG",
		Numeric:   "600",
		Name:      "Guarani",
		Symbol:    "Gs",
		Decimals:  0,
		Countries: []string{"PARAGUAY"},
	},
	"QAR": {
		Code:      "QAR",
		Numeric:   "634",
		Name:      "Qatari Rial",
		Symbol:    "﷼",
		Decimals:  2,
		Countries: []string{"QATAR"},
	},
	"RON": {
		Code:      "RON",
		Numeric:   "946",
		Name:      "New Romanian Leu",
		Symbol:    "lei",
		Decimals:  2,
		Countries: []string{"ROMANIA"},
	},
	"RSD": {
		Code:      "RSD",
		Numeric:   "941",
		Name:      "Serbian Dinar",
		Symbol:    "Дин.",
		Decimals:  2,
		Countries: []string{"SERBIA "},
	},
	"RUB": {
		Code:      "RUB",
		Numeric:   "643",
		Name:      "Russian Ruble",
		Symbol:    "руб",
		Decimals:  2,
		Countries: []string{"RUSSIAN FEDERATION"},
	},
	"RWF": {
		Code:      "RWF",
		Numeric:   "646",
		Name:      "Rwanda Franc",
		Decimals:  0,
		Countries: []string{"RWANDA"},
	},
	"SAR": {
		Code:      "SAR",
		Numeric:   "682",
		Name:      "Saudi Riyal",
		Symbol:    "﷼",
		Decimals:  2,
		Countries: []string{"SAUDI ARABIA"},
	},
	"SBD": {
		Code:      "SBD",
		Numeric:   "090",
		Name:      "Solomon Islands Dollar",
		Symbol:    "$",
		Decimals:  2,
		Countries: []string{"SOLOMON ISLANDS"},
	},
	"SCR": {
		Code:      "SCR",
		Numeric:   "690",
		Name:      "Seychelles Rupee",
		Symbol:    "₨",
		Decimals:  2,
		Countries: []string{"SEYCHELLES"},
	},
	"SDG": {
		Code:      "SDG",
		Numeric:   "938",
		Name:      "Sudanese Pound",
		Decimals:  2,
		Countries: []string{"SUDAN"},
	},
	"SEK": {
		Code:      "SEK",
		Numeric:   "752",
		Name:      "Swedish Krona",
		Symbol:    "kr",
		Decimals:  2,
		Countries: []string{"SWEDEN"},
	},
	"SGD": {
		Code:      "SGD",
		Numeric:   "702",
		Name:      "Singapore Dollar",
		Symbol:    "$",
		Decimals:  2,
		Countries: []string{"SINGAPORE"},
	},
	"SHP": {
		Code:      "SHP",
		Numeric:   "654",
		Name:      "Saint Helena Pound",
		Symbol:    "£",
		Decimals:  2,
		Countries: []string{"SAINT HELENA, ASCENSION AND TRISTAN DA CUNHA"},
	},
	"SLL": {
		Code:      "SLL",
		Numeric:   "694",
		Name:      "Leone",
		Decimals:  2,
		Countries: []string{"SIERRA LEONE"},
	},
	"SOS": {
		Code:      "SOS",
		Numeric:   "706",
		Name:      "Somali Shilling",
		Symbol:    "S",
		Decimals:  2,
		Countries: []string{"SOMALIA"},
	},
	"SRD": {
		Code:      "SRD",
		Numeric:   "968",
		Name:      "Surinam Dollar",
		Symbol:    "$",
		Decimals:  2,
		Countries: []string{"SURINAME"},
	},
	"SSP": {
		Code:      "SSP",
		Numeric:   "728",
		Name:      "South Sudanese Pound",
		Decimals:  2,
		Countries: []string{"SOUTH SUDAN"},
	},
	"STD": {
		Code:      "STD",
		Numeric:   "678",
		Name:      "Dobra",
		Decimals:  2,
		Countries: []string{"SAO TOME AND PRINCIPE"},
	},
	"SVC": {
		Code:      "SVC",
		Numeric:   "222",
		Name:      "El Salvador Colon",
		Symbol:    "$",
		Decimals:  2,
		Countries: []string{"EL SALVADOR"},
	},
	"SYP": {
		Code:      "SYP",
		Numeric:   "760",
		Name:      "Syrian Pound",
		Symbol:    "£",
		Decimals:  2,
		Countries: []string{"SYRIAN ARAB REPUBLIC"},
	},
	"SZL": {
		Code:      "SZL",
		Numeric:   "748",
		Name:      "Lilangeni",
		Decimals:  2,
		Countries: []string{"SWAZILAND"},
	},
	"THB": {
		Code:      "THB",
		Numeric:   "764",
		Name:      "Baht",
		Symbol:    "฿",
		Decimals:  2,
		Countries: []string{"THAILAND"},
	},
	"TJS": {
		Code:      "TJS",
		Numeric:   "972",
		Name:      "Somoni",
		Decimals:  2,
		Countries: []string{"TAJIKISTAN"},
	},
	"TMT": {
		Code:      "TMT",
		Numeric:   "934",
		Name:      "Turkmenistan New Manat",
		Decimals:  2,
		Countries: []string{"TURKMENISTAN"},
	},
	"TND": {
		Code:      "TND",
		Numeric:   "788",
		Name:      "Tunisian Dinar",
		Decimals:  3,
		Countries: []string{"TUNISIA"},
	},
	"TOP": {
		Code:      "TOP",
		Numeric:   "776",
		Name:      "Pa’anga",
		Decimals:  2,
		Countries: []string{"TONGA"},
	},
	"TRY": {
		Code:      "TRY",
		Numeric:   "949",
		Name:      "Turkish Lira",
		Symbol:    "TL",
		Decimals:  2,
		Countries: []string{"TURKEY"},
	},
	"TTD": {
		Code:      "TTD",
		Numeric:   "780",
		Name:      "Trinidad and Tobago Dollar",
		Symbol:    "TT$",
		Decimals:  2,
		Countries: []string{"TRINIDAD AND TOBAGO"},
	},
	"TWD": {
		Code:      "TWD",
		Numeric:   "901",
		Name:      "New Taiwan Dollar",
		Symbol:    "NT$",
		Decimals:  2,
		Countries: []string{"TAIWAN, PROVINCE OF CHINA"},
	},
	"TZS": {
		Code:      "TZS",
		Numeric:   "834",
		Name:      "Tanzanian Shilling",
		Decimals:  2,
		Countries: []string{"TANZANIA, UNITED REPUBLIC OF"},
	},
	"UAH": {
		Code:      "UAH",
		Numeric:   "980",
		Name:      "Hryvnia",
		Symbol:    "₴",
		Decimals:  2,
		Countries: []string{"UKRAINE"},
	},
	"UGX": {
		Code:      "UGX",
		Numeric:   "800",
		Name:      "Uganda Shilling",
		Decimals:  2,
		Countries: []string{"UGANDA"},
	},
	"USD": {
		Code:      "USD",
		Numeric:   "840",
		Name:      "US Dollar",
		Symbol:    "$",
		Decimals:  2,
		Countries: []string{
			"AMERICAN SAMOA",
			"BONAIRE, SINT EUSTATIUS AND SABA",
			"BRITISH INDIAN OCEAN TERRITORY",
			"ECUADOR",
			"EL SALVADOR",
			"GUAM",
			"HAITI",
			"MARSHALL ISLANDS",
			"MICRONESIA, FEDERATED STATES OF",
			"NORTHERN MARIANA ISLANDS",
			"PALAU",
			"PANAMA",
			"PUERTO RICO",
			"TIMOR-LESTE",
			"TURKS AND CAICOS ISLANDS",
			"UNITED STATES",
			"UNITED STATES MINOR OUTLYING ISLANDS",
			"VIRGIN ISLANDS (BRITISH)",
			"VIRGIN ISLANDS (US)",
		},
	},
	"USN": {
		Code:      "USN",
		Numeric:   "997",
		Name:      "US Dollar (Next day)",
		Symbol:    "$",
		Decimals:  2,
		Countries: []string{"UNITED STATES"},
	},
	"USS": {
		Code:      "USS",
		Numeric:   "998",
		Name:      "US Dollar (Same day)",
		Symbol:    "$",
		Decimals:  2,
		Countries: []string{"UNITED STATES"},
	},
	"UYI": {
		Code:      "UYI",
		Numeric:   "940",
		Name:      "Uruguay Peso en Unidades Indexadas (URUIURUI)",
		Decimals:  0,
		Countries: []string{"URUGUAY"},
	},
	"UYU": {
		Code:      "UYU",
		Numeric:   "858",
		Name:      "Peso Uruguayo",
		Symbol:    "$U",
		Decimals:  2,
		Countries: []string{"URUGUAY"},
	},
	"UZS": {
		Code:      "UZS",
		Numeric:   "860",
		Name:      "Uzbekistan Sum",
		Symbol:    "лв",
		Decimals:  2,
		Countries: []string{"UZBEKISTAN"},
	},
	"VEF": {
		Code:      "VEF",
		Numeric:   "937",
		Name:      "Bolivar Fuerte",
		Symbol:    "Bs",
		Decimals:  2,
		Countries: []string{"VENEZUELA, BOLIVARIAN REPUBLIC OF"},
	},
	"VND": {
		Code:      "VND",
		Numeric:   "704",
		Name:      "Dong",
		Symbol:    "₫",
		Decimals:  0,
		Countries: []string{"VIET NAM"},
	},
	"VUV": {
		Code:      "VUV",
		Numeric:   "548",
		Name:      "Vatu",
		Decimals:  0,
		Countries: []string{"VANUATU"},
	},
	"WST": {
		Code:      "WST",
		Numeric:   "882",
		Name:      "Tala",
		Decimals:  2,
		Countries: []string{"SAMOA"},
	},
	"XAF": {
		Code:      "XAF",
		Numeric:   "950",
		Name:      "CFA Franc BEAC",
		Decimals:  0,
		Countries: []string{
			"CAMEROON",
			"CENTRAL AFRICAN REPUBLIC",
			"CHAD",
			"CONGO",
			"EQUATORIAL GUINEA",
			"GABON",
		},
	},
	"XAG": {
		Code:      "XAG",
		Numeric:   "961",
		Name:      "Silver",
		Decimals:  0,
		Countries: []string{"ZZ11_Silver"},
	},
	"XAU": {
		Code:      "XAU",
		Numeric:   "959",
		Name:      "Gold",
		Decimals:  0,
		Countries: []string{"ZZ08_Gold"},
	},
	"XBA": {
		Code:      "XBA",
		Numeric:   "955",
		Name:      "Bond Markets Unit European Composite Unit (EURCO)",
		Decimals:  0,
		Countries: []string{"ZZ01_Bond Markets Unit European_EURCO"},
	},
	"XBB": {
		Code:      "XBB",
		Numeric:   "956",
		Name:      "Bond Markets Unit European Monetary Unit (E.M.U.-6)",
		Decimals:  0,
		Countries: []string{"ZZ02_Bond Markets Unit European_EMU-6"},
	},
	"XBC": {
		Code:      "XBC",
		Numeric:   "957",
		Name:      "Bond Markets Unit European Unit of Account 9 (E.U.A.-9)",
		Decimals:  0,
		Countries: []string{"ZZ03_Bond Markets Unit European_EUA-9"},
	},
	"XBD": {
		Code:      "XBD",
		Numeric:   "958",
		Name:      "Bond Markets Unit European Unit of Account 17 (E.U.A.-17)",
		Decimals:  0,
		Countries: []string{"ZZ04_Bond Markets Unit European_EUA-17"},
	},
	"XCD": {
		Code:      "XCD",
		Numeric:   "951",
		Name:      "East Caribbean Dollar",
		Symbol:    "$",
		Decimals:  2,
		Countries: []string{
			"ANGUILLA",
			"ANTIGUA AND BARBUDA",
			"DOMINICA",
			"GRENADA",
			"MONTSERRAT",
			"SAINT KITTS AND NEVIS",
			"SAINT LUCIA",
			"SAINT VINCENT AND THE GRENADINES",
		},
	},
	"XDR": {
		Code:      "XDR",
		Numeric:   "960",
		Name:      "SDR (Special Drawing Right)",
		Decimals:  0,
		Countries: []string{"INTERNATIONAL MONETARY FUND (IMF) "},
	},
	"XFU": {
		Code:      "XFU",
		Numeric:   "Nil",
		Name:      "UIC-Franc",
		Decimals:  0,
		Countries: []string{"ZZ05_UIC-Franc"},
	},
	"XOF": {
		Code:      "XOF",
		Numeric:   "952",
		Name:      "CFA Franc BCEAO",
		Decimals:  0,
		Countries: []string{
			"BENIN",
			"BURKINA FASO",
			"CÔTE D'IVOIRE",
			"GUINEA-BISSAU",
			"MALI",
			"NIGER",
			"SENEGAL",
			"TOGO",
		},
	},
	"XPD": {
		Code:      "XPD",
		Numeric:   "964",
		Name:      "Palladium",
		Decimals:  0,
		Countries: []string{"ZZ09_Palladium"},
	},
	"XPF": {
		Code:      "XPF",
		Numeric:   "953",
		Name:      "CFP Franc",
		Decimals:  0,
		Countries: []string{
			"FRENCH POLYNESIA",
			"NEW CALEDONIA",
			"WALLIS AND FUTUNA",
		},
	},
	"XPT": {
		Code:      "XPT",
		Numeric:   "962",
		Name:      "Platinum",
		Decimals:  0,
		Countries: []string{"ZZ10_Platinum"},
	},
	"XSU": {
		Code:      "XSU",
		Numeric:   "994",
		Name:      "Sucre",
		Decimals:  0,
		Countries: []string{"SISTEMA UNITARIO DE COMPENSACION REGIONAL DE PAGOS \"SUCRE\" "},
	},
	"XTS": {
		Code:      "XTS",
		Numeric:   "963",
		Name:      "Codes specifically reserved for testing purposes",
		Decimals:  0,
		Countries: []string{"ZZ06_Testing_Code"},
	},
	"XUA": {
		Code:      "XUA",
		Numeric:   "965",
		Name:      "ADB Unit of Account",
		Decimals:  0,
		Countries: []string{"MEMBER COUNTRIES OF THE AFRICAN DEVELOPMENT BANK GROUP"},
	},
	"XXX": {
		Code:      "XXX",
		Numeric:   "999",
		Name:      "The codes assigned for transactions where no currency is involved",
		Decimals:  0,
		Countries: []string{"ZZ07_No_Currency"},
	},
	"YER": {
		Code:      "YER",
		Numeric:   "886",
		Name:      "Yemeni Rial",
		Symbol:    "﷼",
		Decimals:  2,
		Countries: []string{"YEMEN"},
	},
	"ZAR": {
		Code:      "ZAR",
		Numeric:   "710",
		Name:      "Rand",
		Symbol:    "R",
		Decimals:  2,
		Countries: []string{
			"LESOTHO",
			"NAMIBIA",
			"SOUTH AFRICA",
		},
	},
	"ZMK": {
		Code:      "ZMK",
		Numeric:   "894",
		Name:      "Zambian Kwacha",
		Decimals:  2,
		Countries: []string{"ZAMBIA"},
	},
	"ZWL": {
		Code:      "ZWL",
		Numeric:   "932",
		Name:      "Zimbabwe Dollar",
		Decimals:  2,
		Countries: []string{"ZIMBABWE"},
	},
}
