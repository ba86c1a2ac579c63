package dataset

const (
	TransistorsName = "transistors"
	StorageName     = "storage"
)

var transistorRecords = []Record{
	{1971, "Intel 4004", 2300},
	{1972, "Intel 8008", 3500},
	{1974, "Intel 8080", 4500},
	{1978, "Intel 8086", 29000},
	{1982, "Intel 80286", 134000},
	{1985, "Intel 80386", 275000},
	{1989, "Intel 80486", 1200000},
	{1993, "Intel Pentium", 3100000},
	{1997, "Intel Pentium II", 7500000},
	{1999, "Intel Pentium III", 9500000},
	{2000, "Intel Pentium 4", 42000000},
	{2006, "Intel Core 2 Duo", 291000000},
	{2008, "Intel Core i7", 731000000},
	{2012, "Intel Core i7 3770K", 1400000000},
	{2015, "Intel Core i7 6700K", 1750000000},
	{2017, "AMD Ryzen Threadripper", 19200000000},
	{2019, "AMD Epyc Rome", 39540000000},
	{2022, "NVIDIA H100", 80000000000},
}

// capacities in GB
var storageRecords = []Record{
	{1971, "IBM 3330", 0.1},
	{1980, "Seagate ST-506", 2.52},
	{1991, "IBM 0663", 10},
	{1998, "IBM Deskstar 25GP", 47},
	{2003, "Hitachi Deskstar", 400},
	{2005, "Hitachi Deskstar", 500},
	{2007, "Hitachi Deskstar 7K1000", 1000},
	{2010, "Seagate Barracuda XT", 3000},
	{2012, "Hitachi Deskstar 7K4000", 4000},
	{2014, "Seagate Archive HDD", 8000},
	{2016, "Seagate BarraCuda Pro", 12000},
	{2018, "WD Ultrastar DC HC620", 15000},
	{2020, "Seagate IronWolf Pro", 20000},
	{2022, "Seagate Exos", 26000},
}

// Transistors returns a copy of the built-in CPU transistor count table.
func Transistors() Table {
	return Table{Name: TransistorsName, Records: append([]Record(nil), transistorRecords...)}
}

// Storage returns a copy of the built-in storage capacity table (GB).
func Storage() Table {
	return Table{Name: StorageName, Records: append([]Record(nil), storageRecords...)}
}
