package seqinfo

// c0Names covers 0x00-0x1F plus DEL. Indexed by byte value.
var c0Names = [0x20]string{
	"NUL", "SOH", "STX", "ETX", "EOT", "ENQ", "ACK", "BEL",
	"BS", "HT", "LF", "VT", "FF", "CR", "SO", "SI",
	"DLE", "DC1", "DC2", "DC3", "DC4", "NAK", "SYN", "ETB",
	"CAN", "EM", "SUB", "ESC", "FS", "GS", "RS", "US",
}

// c1Names covers 0x80-0x9F, using the conventional aliases.
var c1Names = [0x20]string{
	"PAD", "HOP", "BPH", "NBH", "IND", "NEL", "SSA", "ESA",
	"HTS", "HTJ", "VTS", "PLD", "PLU", "RI", "SS2", "SS3",
	"DCS", "PU1", "PU2", "STS", "CCH", "MW", "SPA", "EPA",
	"SOS", "SGC", "SCI", "CSI", "ST", "OSC", "PM", "APC",
}

// escNames is keyed by the intermediate bytes followed by the final
// byte. Sequences that the parser diverts into their own states (CSI,
// OSC, DCS introducers) are listed anyway so a formatter can name a
// bare dispatch should one ever surface.
var escNames = map[string]string{
	"D": "IND",
	"E": "NEL",
	"H": "HTS",
	"M": "RI",
	"N": "SS2",
	"O": "SS3",
	"V": "SPA",
	"W": "EPA",
	"Z": "DECID",
	"7": "DECSC",
	"8": "DECRC",
	"=": "DECKPAM",
	">": "DECKPNM",
	"c": "RIS",
	`\`: "ST",

	"#8": "DECALN",

	"(0": "SCS G0 DEC graphics",
	"(A": "SCS G0 UK",
	"(B": "SCS G0 ASCII",
	")0": "SCS G1 DEC graphics",
	")A": "SCS G1 UK",
	")B": "SCS G1 ASCII",
	"*B": "SCS G2 ASCII",
	"+B": "SCS G3 ASCII",

	"%G": "UTF-8 charset",
	"%@": "default charset",
}

// csiNames is keyed the same way: private markers and intermediates,
// then the final byte.
var csiNames = map[string]string{
	"@": "ICH",
	"A": "CUU",
	"B": "CUD",
	"C": "CUF",
	"D": "CUB",
	"E": "CNL",
	"F": "CPL",
	"G": "CHA",
	"H": "CUP",
	"I": "CHT",
	"J": "ED",
	"K": "EL",
	"L": "IL",
	"M": "DL",
	"P": "DCH",
	"S": "SU",
	"T": "SD",
	"X": "ECH",
	"Z": "CBT",
	"`": "HPA",
	"a": "HPR",
	"b": "REP",
	"c": "DA",
	"d": "VPA",
	"e": "VPR",
	"f": "HVP",
	"g": "TBC",
	"h": "SM",
	"l": "RM",
	"m": "SGR",
	"n": "DSR",
	"r": "DECSTBM",
	"s": "SCOSC",
	"t": "XTWINOPS",
	"u": "SCORC",

	"?h": "DECSET",
	"?l": "DECRST",
	"?n": "DSR",

	" q": "DECSCUSR",
	"!p": "DECSTR",
	`"q`: "DECSCA",
	"$p": "DECRQM",
	">c": "DA2",
	"=c": "DA3",
}

// oscNames is keyed by the raw first field of the control string.
var oscNames = map[string]string{
	"0":   "set title and icon",
	"1":   "set icon name",
	"2":   "set window title",
	"4":   "set palette color",
	"7":   "report working directory",
	"8":   "hyperlink",
	"10":  "set foreground color",
	"11":  "set background color",
	"12":  "set cursor color",
	"52":  "clipboard",
	"104": "reset palette color",
	"110": "reset foreground color",
	"111": "reset background color",
	"112": "reset cursor color",
	"133": "shell integration mark",
}
