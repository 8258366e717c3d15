package reference

// Built-in tables for the 2024 general election. Keys must match the party
// strings in the published exports exactly, including the double spaces and
// punctuation quirks some vintages carry; do not "fix" the spelling here.

// NOTAParty is the ballot option recorded for "none of the above" votes.
// Vote-share aggregation excludes it entirely.
const NOTAParty = "None of the Above"

// Reference parties for the head-to-head insight.
const (
	PartyBJP = "Bharatiya Janata Party"
	PartyINC = "Indian National Congress"
)

var partyShortNames = map[string]string{
	"Bharatiya Janata Party":             "BJP",
	"Indian National Congress":           "INC",
	"Samajwadi Party":                    "SP",
	"All India Trinamool Congress":       "TMC",
	"Dravida Munnetra Kazhagam":          "DMK",
	"Telugu Desam":                       "TDP",
	"Janata Dal (United)":                "JD(U)",
	"Shiv Sena":                          "SHS",
	"Nationalist Congress Party – Sharadchandra Pawar": "NCP-SP",
	"Aam Aadmi Party":                      "AAP",
	"Communist Party of India (Marxist)":   "CPI(M)",
	"Yuvajana Sramika Rythu Congress Party": "YSRCP",
	"Rashtriya Janata Dal":                 "RJD",
	"Biju Janata Dal":                      "BJD",
	"Janasena Party":                       "JSP",
	"Communist Party of India (Marxist-Leninist) (Liberation)": "CPI(ML)",
	"Shiromani Akali Dal":                  "SAD",
	"Jharkhand Mukti Morcha":               "JMM",
	"Rashtriya Lok Dal":                    "RLD",
}

var partyColors = map[string]string{
	"Bharatiya Janata Party":               "hsl(24, 95%, 53%)",
	"Indian National Congress":             "hsl(210, 70%, 45%)",
	"Samajwadi Party":                      "hsl(0, 75%, 45%)",
	"All India Trinamool Congress":         "hsl(150, 60%, 40%)",
	"Dravida Munnetra Kazhagam":            "hsl(0, 75%, 50%)",
	"Telugu Desam":                         "hsl(45, 100%, 50%)",
	"Janata Dal (United)":                  "hsl(120, 50%, 45%)",
	"Aam Aadmi Party":                      "hsl(45, 100%, 50%)",
	"Communist Party of India (Marxist)":   "hsl(0, 80%, 40%)",
	"Yuvajana Sramika Rythu Congress Party": "hsl(200, 70%, 50%)",
}

var prior2019 = map[string]PriorResult{
	"Bharatiya Janata Party":                 {Seats: 303, VoteShare: 37.36},
	"Indian National Congress":               {Seats: 52, VoteShare: 19.49},
	"Dravida Munnetra Kazhagam":              {Seats: 23, VoteShare: 2.26},
	"All India Trinamool Congress":           {Seats: 22, VoteShare: 4.07},
	"Yuvajana Sramika Rythu Congress Party":  {Seats: 22, VoteShare: 2.53},
	"Shiv Sena":                              {Seats: 18, VoteShare: 2.10}, // undivided
	"Shiv Sena (Uddhav Balasaheb Thackrey)":  {Seats: 0, VoteShare: 0}, // did not exist in 2019
	"Janata Dal  (United)":                   {Seats: 16, VoteShare: 1.46}, // two spaces in source
	"Biju Janata Dal":                        {Seats: 12, VoteShare: 1.66},
	"Bahujan Samaj Party":                    {Seats: 10, VoteShare: 3.63},
	"Telugu Desam":                           {Seats: 3, VoteShare: 2.34},
	"Samajwadi Party":                        {Seats: 5, VoteShare: 2.55},
	"Nationalist Congress Party":             {Seats: 5, VoteShare: 1.39},
	"Nationalist Congress Party – Sharadchandra Pawar": {Seats: 0, VoteShare: 0}, // split from NCP
	"Communist Party of India  (Marxist)":    {Seats: 3, VoteShare: 1.75}, // two spaces in source
	"Communist Party of India":               {Seats: 2, VoteShare: 0.60},
	"Aam Aadmi Party":                        {Seats: 1, VoteShare: 0.44},
	"Rashtriya Janata Dal":                   {Seats: 0, VoteShare: 1.46},
	"Jharkhand Mukti Morcha":                 {Seats: 1, VoteShare: 0.38},
	"Shiromani Akali Dal":                    {Seats: 2, VoteShare: 0.80},
	"Lok Janshakti Party(Ram Vilas)":         {Seats: 6, VoteShare: 0.52}, // no space before (
	"Janasena Party":                         {Seats: 0, VoteShare: 0.69},
	"Rashtriya Lok Dal":                      {Seats: 0, VoteShare: 0.24},
	"Asom Gana Parishad":                     {Seats: 0, VoteShare: 0.28},
	"Communist Party of India  (Marxist-Leninist)  (Liberation)": {Seats: 0, VoteShare: 0.10},
	"Jammu & Kashmir National Conference":    {Seats: 3, VoteShare: 0.29},
	"Indian Union Muslim League":             {Seats: 3, VoteShare: 0.26},
	"Kerala Congress":                        {Seats: 1, VoteShare: 0.12},
	"All India Anna Dravida Munnetra Kazhagam": {Seats: 1, VoteShare: 2.16},
	"Bharat Adivasi Party":                   {Seats: 0, VoteShare: 0},
	"Viduthalai Chiruthaigal Katchi":         {Seats: 0, VoteShare: 0},
	"Janata Dal  (Secular)":                  {Seats: 1, VoteShare: 0.35}, // two spaces in source
	"Revolutionary Socialist Party":          {Seats: 0, VoteShare: 0},
	"Sikkim Krantikari Morcha":               {Seats: 1, VoteShare: 0.15},
	"AJSU Party":                             {Seats: 0, VoteShare: 0},
	"All India Majlis-E-Ittehadul Muslimeen": {Seats: 2, VoteShare: 0.40},
	"Rashtriya Loktantrik Party":             {Seats: 0, VoteShare: 0},
	"Aazad Samaj Party (Kanshi Ram)":         {Seats: 0, VoteShare: 0},
	"Apna Dal (Soneylal)":                    {Seats: 2, VoteShare: 0.20},
	"Hindustani Awam Morcha (Secular)":       {Seats: 0, VoteShare: 0},
	"Marumalarchi Dravida Munnetra Kazhagam": {Seats: 0, VoteShare: 0},
	"Voice of the People Party":              {Seats: 0, VoteShare: 0},
	"United People's Party, Liberal":         {Seats: 0, VoteShare: 0},
	"Zoram People's Movement":                {Seats: 0, VoteShare: 0},
	"Independent":                            {Seats: 4, VoteShare: 2.97},
}

var state2019 = map[string]PriorStateResult{
	"Uttar Pradesh": {State: "Uttar Pradesh", TotalSeats: 80, Parties: map[string]int{
		"BJP": 62, "INC": 1, "SP": 5, "BSP": 10, "Apna Dal": 2,
	}},
	"Maharashtra": {State: "Maharashtra", TotalSeats: 48, Parties: map[string]int{
		"BJP": 23, "INC": 1, "Shiv Sena": 18, "NCP": 4, "Others": 2,
	}},
	"West Bengal": {State: "West Bengal", TotalSeats: 42, Parties: map[string]int{
		"BJP": 18, "TMC": 22, "Others": 2,
	}},
	"Bihar": {State: "Bihar", TotalSeats: 40, Parties: map[string]int{
		"BJP": 17, "INC": 1, "JDU": 16, "LJP": 6,
	}},
	"Tamil Nadu": {State: "Tamil Nadu", TotalSeats: 39, Parties: map[string]int{
		"INC": 8, "DMK": 23, "AIADMK": 1, "Others": 7,
	}},
	"Madhya Pradesh": {State: "Madhya Pradesh", TotalSeats: 29, Parties: map[string]int{
		"BJP": 28, "INC": 1,
	}},
	"Karnataka": {State: "Karnataka", TotalSeats: 28, Parties: map[string]int{
		"BJP": 25, "INC": 1, "JDS": 1, "Independent": 1,
	}},
	"Gujarat": {State: "Gujarat", TotalSeats: 26, Parties: map[string]int{
		"BJP": 26,
	}},
	"Rajasthan": {State: "Rajasthan", TotalSeats: 25, Parties: map[string]int{
		"BJP": 24, "Independent": 1,
	}},
	"Andhra Pradesh": {State: "Andhra Pradesh", TotalSeats: 25, Parties: map[string]int{
		"YSRCP": 22, "TDP": 3,
	}},
	"Odisha": {State: "Odisha", TotalSeats: 21, Parties: map[string]int{
		"BJP": 8, "BJD": 12, "Independent": 1,
	}},
	"Kerala": {State: "Kerala", TotalSeats: 20, Parties: map[string]int{
		"INC": 15, "IUML": 3, "CPI(M)": 1, "Others": 1,
	}},
	"Telangana": {State: "Telangana", TotalSeats: 17, Parties: map[string]int{
		"BJP": 4, "INC": 3, "TRS": 9, "AIMIM": 1,
	}},
	"Assam": {State: "Assam", TotalSeats: 14, Parties: map[string]int{
		"BJP": 9, "INC": 3, "AIUDF": 1, "Independent": 1,
	}},
	"Jharkhand": {State: "Jharkhand", TotalSeats: 14, Parties: map[string]int{
		"BJP": 11, "JMM": 1, "Others": 2,
	}},
	"Punjab": {State: "Punjab", TotalSeats: 13, Parties: map[string]int{
		"BJP": 2, "INC": 8, "SAD": 2, "AAP": 1,
	}},
	"Chhattisgarh": {State: "Chhattisgarh", TotalSeats: 11, Parties: map[string]int{
		"BJP": 9, "INC": 2,
	}},
	"Haryana": {State: "Haryana", TotalSeats: 10, Parties: map[string]int{
		"BJP": 10,
	}},
	"Delhi": {State: "Delhi", TotalSeats: 7, Parties: map[string]int{
		"BJP": 7,
	}},
}
