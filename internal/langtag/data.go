package langtag

// Curated slices of the BCP 47 / ISO 639 registry relations that the related
// code collector needs and that x/text does not expose: macrolanguage
// membership, deprecated replacements, and alpha-3 code equivalents.

// macrolanguages maps individual language codes to their ISO 639
// macrolanguage.
var macrolanguages = map[string]string{
	// Chinese
	"cmn": "zh",
	"yue": "zh",
	"wuu": "zh",
	"hak": "zh",
	"nan": "zh",
	"gan": "zh",
	"hsn": "zh",
	"cdo": "zh",
	"cjy": "zh",
	"mnp": "zh",
	// Arabic
	"arb": "ar",
	"arz": "ar",
	"apc": "ar",
	"acm": "ar",
	"ary": "ar",
	"aeb": "ar",
	"afb": "ar",
	// Malay
	"zsm": "ms",
	"zlm": "ms",
	"min": "ms",
	"bjn": "ms",
	// Norwegian
	"nb": "no",
	"nn": "no",
	// Persian
	"pes": "fa",
	"prs": "fa",
	// Mongolian
	"khk": "mn",
	"mvf": "mn",
	// Others
	"uzn": "uz",
	"uzs": "uz",
	"azj": "az",
	"azb": "az",
	"als": "sq",
	"ekk": "et",
	"lvs": "lv",
	"swh": "sw",
	"swc": "sw",
	"quz": "qu",
	"ydd": "yi",
	"pbu": "ps",
	"knn": "kok",
	"gax": "om",
	"plt": "mg",
	"ike": "iu",
	"esk": "ik",
	"fat": "ak",
	"twi": "ak",
	"ckb": "ku",
	"kmr": "ku",
	"sdh": "ku",
}

// languageReplacements maps deprecated or legacy codes to their canonical
// replacements.
var languageReplacements = map[string]string{
	"iw":  "he",
	"in":  "id",
	"ji":  "yi",
	"jw":  "jv",
	"mo":  "ro",
	"tl":  "fil",
	"sh":  "sr",
	"scc": "sr",
	"scr": "hr",
	"mol": "ro",
	"aam": "aas",
	"adp": "dz",
	"drh": "mn",
	"gav": "dev",
	"tie": "ras",
	"tkk": "twm",
}

// languageAlpha3 maps ISO 639-1 codes to their terminological ISO 639-2/T
// (= 639-3) codes.
var languageAlpha3 = map[string]string{
	"ar": "ara",
	"az": "aze",
	"be": "bel",
	"bg": "bul",
	"bn": "ben",
	"bs": "bos",
	"ca": "cat",
	"cs": "ces",
	"cy": "cym",
	"da": "dan",
	"de": "deu",
	"el": "ell",
	"en": "eng",
	"eo": "epo",
	"es": "spa",
	"et": "est",
	"eu": "eus",
	"fa": "fas",
	"fi": "fin",
	"fr": "fra",
	"ga": "gle",
	"gl": "glg",
	"he": "heb",
	"hi": "hin",
	"hr": "hrv",
	"hu": "hun",
	"hy": "hye",
	"id": "ind",
	"is": "isl",
	"it": "ita",
	"ja": "jpn",
	"jv": "jav",
	"ka": "kat",
	"kk": "kaz",
	"km": "khm",
	"kn": "kan",
	"ko": "kor",
	"ku": "kur",
	"lt": "lit",
	"lv": "lav",
	"mk": "mkd",
	"ml": "mal",
	"mn": "mon",
	"mr": "mar",
	"ms": "msa",
	"mt": "mlt",
	"my": "mya",
	"ne": "nep",
	"nl": "nld",
	"no": "nor",
	"pa": "pan",
	"pl": "pol",
	"ps": "pus",
	"pt": "por",
	"ro": "ron",
	"ru": "rus",
	"si": "sin",
	"sk": "slk",
	"sl": "slv",
	"sq": "sqi",
	"sr": "srp",
	"sv": "swe",
	"sw": "swa",
	"ta": "tam",
	"te": "tel",
	"th": "tha",
	"tr": "tur",
	"uk": "ukr",
	"ur": "urd",
	"uz": "uzb",
	"vi": "vie",
	"yi": "yid",
	"zh": "zho",
}

// languageAlpha3Bibliographic maps ISO 639-1 codes to the bibliographic ISO
// 639-2/B codes that differ from the terminological ones.
var languageAlpha3Bibliographic = map[string]string{
	"bo": "tib",
	"cs": "cze",
	"cy": "wel",
	"de": "ger",
	"el": "gre",
	"eu": "baq",
	"fa": "per",
	"fr": "fre",
	"hy": "arm",
	"is": "ice",
	"ka": "geo",
	"mi": "mao",
	"mk": "mac",
	"ms": "may",
	"my": "bur",
	"nl": "dut",
	"ro": "rum",
	"sk": "slo",
	"sq": "alb",
	"zh": "chi",
}

// usTerritoryAllowlist lists the base languages for which XX-US variants are
// meaningful related codes. Everything else paired with the US territory is
// noise from likely-subtag inference.
var usTerritoryAllowlist = map[string]bool{
	"en": true,
	"es": true,
}
