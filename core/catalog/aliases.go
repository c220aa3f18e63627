package catalog

// commonAliases maps abbreviations and alternate names to display names.
// Names and OSIS IDs are registered automatically; this only holds the extras.
var commonAliases = map[string]string{
	"Ge": "Genesis", "Gn": "Genesis",
	"Ex": "Exodus", "Exo": "Exodus",
	"Lv": "Leviticus", "Le": "Leviticus",
	"Nm": "Numbers", "Nu": "Numbers",
	"Dt": "Deuteronomy",
	"Jos": "Joshua",
	"Jdg": "Judges", "Jg": "Judges",
	"Ru": "Ruth",
	"1 Sa": "1 Samuel", "I Samuel": "1 Samuel", "First Samuel": "1 Samuel",
	"2 Sa": "2 Samuel", "II Samuel": "2 Samuel", "Second Samuel": "2 Samuel",
	"1 Ki": "1 Kings", "1 Kin": "1 Kings", "I Kings": "1 Kings",
	"2 Ki": "2 Kings", "2 Kin": "2 Kings", "II Kings": "2 Kings",
	"1 Ch": "1 Chronicles", "1 Chron": "1 Chronicles",
	"2 Ch": "2 Chronicles", "2 Chron": "2 Chronicles",
	"Ne": "Nehemiah",
	"Es": "Esther", "Est": "Esther",
	"Jb": "Job",
	"Psalm": "Psalms", "Psa": "Psalms", "Pss": "Psalms",
	"Pr": "Proverbs", "Pro": "Proverbs", "Prv": "Proverbs",
	"Ec": "Ecclesiastes", "Qoh": "Ecclesiastes",
	"Song of Songs": "Song of Solomon", "SOS": "Song of Solomon", "Canticles": "Song of Solomon",
	"Is": "Isaiah",
	"Je": "Jeremiah", "Jr": "Jeremiah",
	"La": "Lamentations",
	"Eze": "Ezekiel", "Ezk": "Ezekiel",
	"Da": "Daniel", "Dn": "Daniel",
	"Ho": "Hosea",
	"Jl": "Joel",
	"Am": "Amos",
	"Ob": "Obadiah",
	"Jon": "Jonah", "Jnh": "Jonah",
	"Mi": "Micah",
	"Na": "Nahum",
	"Hb": "Habakkuk",
	"Zep": "Zephaniah", "Zp": "Zephaniah",
	"Hg": "Haggai",
	"Zec": "Zechariah", "Zc": "Zechariah",
	"Ml": "Malachi",
	"Mt": "Matthew", "Mat": "Matthew",
	"Mk": "Mark", "Mrk": "Mark", "Mr": "Mark",
	"Lk": "Luke", "Luk": "Luke",
	"Jn": "John", "Jhn": "John",
	"Ac": "Acts",
	"Ro": "Romans", "Rm": "Romans",
	"1 Co": "1 Corinthians", "I Corinthians": "1 Corinthians",
	"2 Co": "2 Corinthians", "II Corinthians": "2 Corinthians",
	"Ga": "Galatians",
	"Ep": "Ephesians",
	"Php": "Philippians", "Pp": "Philippians",
	"Co": "Colossians",
	"1 Th": "1 Thessalonians", "1 Thes": "1 Thessalonians",
	"2 Th": "2 Thessalonians", "2 Thes": "2 Thessalonians",
	"1 Ti": "1 Timothy",
	"2 Ti": "2 Timothy",
	"Tit": "Titus",
	"Phm": "Philemon", "Philem": "Philemon",
	"He": "Hebrews",
	"Jm": "James", "Jam": "James",
	"1 Pe": "1 Peter", "1 Pt": "1 Peter",
	"2 Pe": "2 Peter", "2 Pt": "2 Peter",
	"1 Jn": "1 John", "1 Jo": "1 John", "I John": "1 John",
	"2 Jn": "2 John", "2 Jo": "2 John", "II John": "2 John",
	"3 Jn": "3 John", "3 Jo": "3 John", "III John": "3 John",
	"Jud": "Jude", "Jd": "Jude",
	"Re": "Revelation", "Rv": "Revelation", "Revelations": "Revelation", "Apocalypse": "Revelation",
}
