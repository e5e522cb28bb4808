package reference

// BuiltinVersion identifies the tables compiled into the binary.
const BuiltinVersion = "2024.1"

// builtin is never handed out directly; Builtin returns a copy.
var builtin = Dataset{
	Version: BuiltinVersion,
	Cases: []Case{
		{
			ID:              "tulip-mania",
			Name:            "Tulip Mania (1636-1637)",
			Period:          "1636-1637",
			SymbolSpeed:     95,
			SubstanceSpeed:  5,
			DecouplingRatio: 19,
			Outcome:         "Complete collapse - tulip bulb prices fell 99% overnight. Speculative frenzy decoupled from actual value.",
		},
		{
			ID:              "financial-crisis-2008",
			Name:            "2008 Financial Crisis",
			Period:          "2007-2008",
			SymbolSpeed:     85,
			SubstanceSpeed:  15,
			DecouplingRatio: 5.7,
			Outcome:         "Global recession - derivatives market ($600T) far exceeded underlying assets ($60T). 10:1 leverage common.",
		},
		{
			ID:              "dot-com-bubble",
			Name:            "Dot-com Bubble (2000)",
			Period:          "1999-2000",
			SymbolSpeed:     90,
			SubstanceSpeed:  20,
			DecouplingRatio: 4.5,
			Outcome:         "Market crash - tech valuations based on clicks, not revenue. NASDAQ fell 78% peak-to-trough.",
		},
		{
			ID:              "weimar-hyperinflation",
			Name:            "Weimar Hyperinflation",
			Period:          "1921-1923",
			SymbolSpeed:     98,
			SubstanceSpeed:  3,
			DecouplingRatio: 32.7,
			Outcome:         "Currency collapse - printing money faster than production. Prices doubled every 3.7 days at peak.",
		},
		{
			ID:              "current-financial-system",
			Name:            "Modern Financial System",
			Period:          "2020s",
			SymbolSpeed:     75,
			SubstanceSpeed:  20,
			DecouplingRatio: 3.75,
			Outcome:         "Ongoing - global derivatives ~$600T vs world GDP ~$100T. Debt levels at historic highs.",
		},
		{
			ID:              "pre-industrial",
			Name:            "Pre-Industrial Economy",
			Period:          "Pre-1750",
			SymbolSpeed:     15,
			SubstanceSpeed:  12,
			DecouplingRatio: 1.25,
			Outcome:         "Stable - commodity money (gold/silver) tightly coupled to physical production and trade.",
		},
	},
	Benchmarks: []Benchmark{
		{
			Name:    "Roman Empire (Late Period)",
			Period:  "3rd-5th Century CE",
			IQScore: 75,
			Outcome: "Collapse - currency debasement, institutional failure, territorial fragmentation",
			Lessons: "Monetary system decoupled from value; military obligations exceeded resources",
		},
		{
			Name:    "Weimar Germany",
			Period:  "1921-1923",
			IQScore: 85,
			Outcome: "Hyperinflation collapse - complete currency failure within 2 years",
			Lessons: "Printing money without substance backing led to total economic breakdown",
		},
		{
			Name:    "2008 Financial Crisis",
			Period:  "2007-2009",
			IQScore: 70,
			Outcome: "Global recession - derivatives market collapse, banking system failure",
			Lessons: "Synthetic financial instruments decoupled from underlying assets",
		},
		{
			Name:    "Tulip Mania",
			Period:  "1636-1637",
			IQScore: 80,
			Outcome: "Market crash - tulip prices collapsed 99% overnight",
			Lessons: "Speculative symbols (tulip bulbs) decoupled from intrinsic value",
		},
		{
			Name:    "Modern US Economy",
			Period:  "2020s",
			IQScore: 65,
			Outcome: "Ongoing - high debt-to-GDP, financialization, inequality",
			Lessons: "Financial sector growth far exceeds productive capacity growth",
		},
		{
			Name:    "Pre-Industrial Society",
			Period:  "Pre-1750",
			IQScore: 15,
			Outcome: "Stable - localized economies, substance-based exchange",
			Lessons: "Tight coupling between symbolic value and physical goods",
		},
	},
}

// Builtin returns a copy of the tables compiled into the binary.
func Builtin() Dataset {
	return builtin.Clone()
}
