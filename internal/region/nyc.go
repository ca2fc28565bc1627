package region

// Region labels for the two built-in NYC tables.
const (
	Manhattan      = "Manhattan"
	Brooklyn       = "Brooklyn"
	Queens         = "Queens"
	Bronx          = "Bronx"
	StatenIsland   = "Staten Island"
	LowerManhattan = "Lower Manhattan"
	UpperManhattan = "Upper Manhattan"
	NorthBrooklyn  = "North Brooklyn"
	SouthBrooklyn  = "South Brooklyn"
	SouthBronx     = "South Bronx"
	WestQueens     = "W. Queens"
)

// BoroughTable maps neighborhood names to the five boroughs.
func BoroughTable() map[string]string {
	return map[string]string{
		"Battery Park City": "Manhattan",
		"Beekman": "Manhattan",
		"Carnegie Hill": "Manhattan",
		"Central Harlem": "Manhattan",
		"Central Park South": "Manhattan",
		"Chelsea": "Manhattan",
		"Chinatown": "Manhattan",
		"Civic Center": "Manhattan",
		"East Harlem": "Manhattan",
		"East Village": "Manhattan",
		"Financial District": "Manhattan",
		"Flatiron": "Manhattan",
		"Fort George": "Manhattan",
		"Fulton/Seaport": "Manhattan",
		"Gramercy Park": "Manhattan",
		"Greenwich Village": "Manhattan",
		"Hamilton Heights": "Manhattan",
		"Hell's Kitchen": "Manhattan",
		"Hudson Heights": "Manhattan",
		"Hudson Square": "Manhattan",
		"Hudson Yards": "Manhattan",
		"Inwood": "Manhattan",
		"Kips Bay": "Manhattan",
		"Lenox Hill": "Manhattan",
		"Lincoln Square": "Manhattan",
		"Little Italy": "Manhattan",
		"Lower East Side": "Manhattan",
		"Madison": "Manhattan",
		"Manhattan Beach": "Brooklyn",
		"Manhattan Valley": "Manhattan",
		"Manhattanville": "Manhattan",
		"Marble Hill": "Manhattan",
		"Midtown": "Manhattan",
		"Midtown South": "Manhattan",
		"Morningside Heights": "Manhattan",
		"Murray Hill": "Manhattan",
		"NoMad": "Manhattan",
		"Noho": "Manhattan",
		"Nolita": "Manhattan",
		"Roosevelt Island": "Manhattan",
		"Soho": "Manhattan",
		"South Harlem": "Manhattan",
		"Stuyvesant Town/PCV": "Manhattan",
		"Sutton Place": "Manhattan",
		"Tribeca": "Manhattan",
		"Turtle Bay": "Manhattan",
		"Two Bridges": "Manhattan",
		"Upper Carnegie Hill": "Manhattan",
		"Upper East Side": "Manhattan",
		"Upper West Side": "Manhattan",
		"Washington Heights": "Manhattan",
		"West Chelsea": "Manhattan",
		"West Harlem": "Manhattan",
		"West Village": "Manhattan",
		"Yorkville": "Manhattan",
		"Bath Beach": "Brooklyn",
		"Bay Ridge": "Brooklyn",
		"Bedford-Stuyvesant": "Brooklyn",
		"Bensonhurst": "Brooklyn",
		"Bergen Beach": "Brooklyn",
		"Boerum Hill": "Brooklyn",
		"Borough Park": "Brooklyn",
		"Brooklyn Heights": "Brooklyn",
		"Brownsville": "Brooklyn",
		"Bushwick": "Brooklyn",
		"Canarsie": "Brooklyn",
		"Carroll Gardens": "Brooklyn",
		"City Line": "Brooklyn",
		"Clinton Hill": "Brooklyn",
		"Cobble Hill": "Brooklyn",
		"Columbia St Waterfront District": "Brooklyn",
		"Coney Island": "Brooklyn",
		"Crown Heights": "Brooklyn",
		"Cypress Hills": "Brooklyn",
		"DUMBO": "Brooklyn",
		"Ditmars-Steinway": "Queens",
		"Ditmas Park": "Brooklyn",
		"Downtown Brooklyn": "Brooklyn",
		"Dyker Heights": "Brooklyn",
		"East Flatbush": "Brooklyn",
		"East New York": "Brooklyn",
		"East Williamsburg": "Brooklyn",
		"Farragut": "Brooklyn",
		"Fiske Terrace": "Brooklyn",
		"Flatbush": "Brooklyn",
		"Flatlands": "Brooklyn",
		"Fort Greene": "Brooklyn",
		"Fort Hamilton": "Brooklyn",
		"Gowanus": "Brooklyn",
		"Gravesend": "Brooklyn",
		"Greenpoint": "Brooklyn",
		"Greenwood": "Brooklyn",
		"Homecrest": "Brooklyn",
		"Kensington": "Brooklyn",
		"Mapleton": "Brooklyn",
		"Marine Park": "Brooklyn",
		"Midwood": "Brooklyn",
		"Mill Basin": "Brooklyn",
		"New Lots": "Brooklyn",
		"Ocean Hill": "Brooklyn",
		"Park Slope": "Brooklyn",
		"Prospect Heights": "Brooklyn",
		"Prospect Lefferts Gardens": "Brooklyn",
		"Prospect Park South": "Brooklyn",
		"Red Hook": "Brooklyn",
		"Sheepshead Bay": "Brooklyn",
		"Starrett City": "Brooklyn",
		"Stuyvesant Heights": "Brooklyn",
		"Sunset Park": "Brooklyn",
		"Vinegar Hill": "Brooklyn",
		"Weeksville": "Brooklyn",
		"Williamsburg": "Brooklyn",
		"Windsor Terrace": "Brooklyn",
		"Wingate": "Brooklyn",
		"Arverne": "Queens",
		"Astoria": "Queens",
		"Auburndale": "Queens",
		"Bay Terrace": "Queens",
		"Bayside": "Queens",
		"Bayswater": "Queens",
		"Beechhurst": "Queens",
		"Briarwood": "Queens",
		"Brookville": "Queens",
		"College Point": "Queens",
		"Corona": "Queens",
		"Douglaston": "Queens",
		"East Elmhurst": "Queens",
		"East Flushing": "Queens",
		"Elmhurst": "Queens",
		"Far Rockaway": "Queens",
		"Flushing": "Queens",
		"Forest Hills": "Queens",
		"Fresh Meadows": "Queens",
		"Glen Oaks": "Queens",
		"Glendale": "Queens",
		"Hillcrest": "Queens",
		"Hollis": "Queens",
		"Hunters Point": "Queens",
		"Jackson Heights": "Queens",
		"Jamaica": "Queens",
		"Jamaica Estates": "Queens",
		"Jamaica Hills": "Queens",
		"Kew Gardens": "Queens",
		"Kew Gardens Hills": "Queens",
		"Laurelton": "Queens",
		"Lindenwood": "Queens",
		"Little Neck": "Queens",
		"Long Island City": "Queens",
		"Malba": "Queens",
		"Maspeth": "Queens",
		"Middle Village": "Queens",
		"North Corona": "Queens",
		"North New York": "Queens",
		"Oakland Gardens": "Queens",
		"Old Howard Beach": "Queens",
		"Ozone Park": "Queens",
		"Pomonok": "Queens",
		"Queens": "Queens",
		"Queens Village": "Queens",
		"Rego Park": "Queens",
		"Richmond Hill": "Queens",
		"Ridgewood": "Queens",
		"Rockaway Park": "Queens",
		"Rockwood Park": "Queens",
		"Rosedale": "Queens",
		"South Jamaica": "Queens",
		"South Ozone Park": "Queens",
		"Springfield Gardens": "Queens",
		"St. Albans": "Queens",
		"Sunnyside": "Queens",
		"The Rockaways": "Queens",
		"Whitestone": "Queens",
		"Woodhaven": "Queens",
		"Woodside": "Queens",
		"Bedford Park": "Bronx",
		"Belmont": "Bronx",
		"Bronxwood": "Bronx",
		"City Island": "Bronx",
		"Claremont": "Bronx",
		"Concourse": "Bronx",
		"Country Club": "Bronx",
		"Crotona Park East": "Bronx",
		"East Tremont": "Bronx",
		"Fieldston": "Bronx",
		"Fordham": "Bronx",
		"Highbridge": "Bronx",
		"Hunts Point": "Bronx",
		"Kingsbridge": "Bronx",
		"Kingsbridge Heights": "Bronx",
		"Laconia": "Bronx",
		"Locust Point": "Bronx",
		"Longwood": "Bronx",
		"Melrose": "Bronx",
		"Morris Heights": "Bronx",
		"Morris Park": "Bronx",
		"Morrisania": "Bronx",
		"Mott Haven": "Bronx",
		"Mt. Hope": "Bronx",
		"Norwood": "Bronx",
		"Parkchester": "Bronx",
		"Pelham Bay": "Bronx",
		"Pelham Gardens": "Bronx",
		"Pelham Parkway": "Bronx",
		"Riverdale": "Bronx",
		"Schuylerville": "Bronx",
		"Soundview": "Bronx",
		"Spuyten Duyvil": "Bronx",
		"Throgs Neck": "Bronx",
		"Tremont": "Bronx",
		"University Heights": "Bronx",
		"Van Nest": "Bronx",
		"Wakefield": "Bronx",
		"West Farms": "Bronx",
		"Westchester Square": "Bronx",
		"Williamsbridge": "Bronx",
		"Woodstock": "Bronx",
		"Annadale": "Staten Island",
		"Arden Heights": "Staten Island",
		"Arrochar": "Staten Island",
		"Bulls Head": "Staten Island",
		"Castleton Corners": "Staten Island",
		"Clifton": "Staten Island",
		"Dongan Hills": "Staten Island",
		"Elm Park": "Staten Island",
		"Eltingville": "Staten Island",
		"Emerson Hill": "Staten Island",
		"Grant City": "Staten Island",
		"Graniteville": "Staten Island",
		"Grasmere": "Staten Island",
		"Great Kills": "Staten Island",
		"Grymes Hill": "Staten Island",
		"Huguenot": "Staten Island",
		"Mariners Harbor": "Staten Island",
		"Meiers Corners": "Staten Island",
		"Midland Beach": "Staten Island",
		"New Brighton": "Staten Island",
		"New Dorp": "Staten Island",
		"New Dorp Beach": "Staten Island",
		"New Springville": "Staten Island",
		"Oakwood": "Staten Island",
		"Park Hill": "Staten Island",
		"Port Richmond": "Staten Island",
		"Princes Bay": "Staten Island",
		"Ramblersville": "Queens",
		"Richmondtown": "Staten Island",
		"Rosebank": "Staten Island",
		"Rossville": "Staten Island",
		"Saint George": "Staten Island",
		"Shore Acres": "Staten Island",
		"Silver Lake": "Staten Island",
		"South Beach": "Staten Island",
		"Stapleton": "Staten Island",
		"Tompkinsville": "Staten Island",
		"Tottenville": "Staten Island",
		"West Brighton": "Staten Island",
		"Westerleigh": "Staten Island",
		"Willowbrook": "Staten Island",
		"Woodrow": "Staten Island",	}
}

// BoroughFallback resolves a borough from coordinates using bounding-box
// rules. Returns Unknown when no rule matches.
func BoroughFallback(lat, lng float64) string {
	if lng > -74.03 && lng < -73.90 && lat > 40.70 && lat < 40.88 {
		if lng > -73.96 || lat < 40.75 {
			return Manhattan
		}
	}
	if lat < 40.65 && lng < -74.04 {
		return StatenIsland
	}
	if lat > 40.80 && lng > -73.94 {
		return Bronx
	}
	if lat > 40.85 {
		return Bronx
	}
	if lat < 40.74 {
		if lng < -73.92 {
			return Brooklyn
		}
		return Queens
	}
	if lng > -73.92 {
		return Queens
	}
	return Unknown
}

// NineRegionTable maps neighborhood names to nine sub-borough regions that
// split Manhattan at 96th/110th St, the Bronx at 149th St, Brooklyn at the
// Empire Blvd / Prospect Expwy line, and Queens at the BQE.
func NineRegionTable() map[string]string {
	return map[string]string{
		"Mott Haven": "South Bronx",
		"Melrose": "South Bronx",
		"Hunts Point": "South Bronx",
		"Longwood": "South Bronx",
		"Morrisania": "South Bronx",
		"Concourse": "South Bronx",
		"Highbridge": "South Bronx",
		"Crotona Park East": "South Bronx",
		"Woodstock": "South Bronx",
		"Bedford Park": "Bronx",
		"Belmont": "Bronx",
		"Bronxwood": "Bronx",
		"City Island": "Bronx",
		"Claremont": "Bronx",
		"Country Club": "Bronx",
		"East Tremont": "Bronx",
		"Fieldston": "Bronx",
		"Fordham": "Bronx",
		"Kingsbridge": "Bronx",
		"Kingsbridge Heights": "Bronx",
		"Laconia": "Bronx",
		"Locust Point": "Bronx",
		"Morris Heights": "Bronx",
		"Morris Park": "Bronx",
		"Mt. Hope": "Bronx",
		"Norwood": "Bronx",
		"Parkchester": "Bronx",
		"Pelham Bay": "Bronx",
		"Pelham Gardens": "Bronx",
		"Pelham Parkway": "Bronx",
		"Riverdale": "Bronx",
		"Schuylerville": "Bronx",
		"Soundview": "Bronx",
		"Spuyten Duyvil": "Bronx",
		"Throgs Neck": "Bronx",
		"Tremont": "Bronx",
		"University Heights": "Bronx",
		"Van Nest": "Bronx",
		"Wakefield": "Bronx",
		"West Farms": "Bronx",
		"Westchester Square": "Bronx",
		"Williamsbridge": "Bronx",
		"Battery Park City": "Lower Manhattan",
		"Beekman": "Lower Manhattan",
		"Carnegie Hill": "Lower Manhattan",
		"Central Park South": "Lower Manhattan",
		"Chelsea": "Lower Manhattan",
		"Chinatown": "Lower Manhattan",
		"Civic Center": "Lower Manhattan",
		"East Village": "Lower Manhattan",
		"Financial District": "Lower Manhattan",
		"Flatiron": "Lower Manhattan",
		"Fulton/Seaport": "Lower Manhattan",
		"Gramercy Park": "Lower Manhattan",
		"Greenwich Village": "Lower Manhattan",
		"Hell's Kitchen": "Lower Manhattan",
		"Hudson Square": "Lower Manhattan",
		"Hudson Yards": "Lower Manhattan",
		"Kips Bay": "Lower Manhattan",
		"Lenox Hill": "Lower Manhattan",
		"Lincoln Square": "Lower Manhattan",
		"Little Italy": "Lower Manhattan",
		"Lower East Side": "Lower Manhattan",
		"Madison": "Lower Manhattan",
		"Manhattan Valley": "Lower Manhattan",
		"Midtown": "Lower Manhattan",
		"Midtown South": "Lower Manhattan",
		"Murray Hill": "Lower Manhattan",
		"NoMad": "Lower Manhattan",
		"Noho": "Lower Manhattan",
		"Nolita": "Lower Manhattan",
		"Roosevelt Island": "Lower Manhattan",
		"Soho": "Lower Manhattan",
		"Stuyvesant Town/PCV": "Lower Manhattan",
		"Sutton Place": "Lower Manhattan",
		"Tribeca": "Lower Manhattan",
		"Turtle Bay": "Lower Manhattan",
		"Two Bridges": "Lower Manhattan",
		"Upper Carnegie Hill": "Lower Manhattan",
		"Upper East Side": "Lower Manhattan",
		"Upper West Side": "Lower Manhattan",
		"West Chelsea": "Lower Manhattan",
		"West Village": "Lower Manhattan",
		"Yorkville": "Lower Manhattan",
		"Central Harlem": "Upper Manhattan",
		"East Harlem": "Upper Manhattan",
		"Fort George": "Upper Manhattan",
		"Hamilton Heights": "Upper Manhattan",
		"Hudson Heights": "Upper Manhattan",
		"Inwood": "Upper Manhattan",
		"Manhattanville": "Upper Manhattan",
		"Marble Hill": "Upper Manhattan",
		"Morningside Heights": "Upper Manhattan",
		"South Harlem": "Upper Manhattan",
		"Washington Heights": "Upper Manhattan",
		"West Harlem": "Upper Manhattan",
		"Bedford-Stuyvesant": "North Brooklyn",
		"Boerum Hill": "North Brooklyn",
		"Brooklyn Heights": "North Brooklyn",
		"Bushwick": "North Brooklyn",
		"Carroll Gardens": "North Brooklyn",
		"Clinton Hill": "North Brooklyn",
		"Cobble Hill": "North Brooklyn",
		"Columbia St Waterfront District": "North Brooklyn",
		"Crown Heights": "North Brooklyn",
		"DUMBO": "North Brooklyn",
		"Downtown Brooklyn": "North Brooklyn",
		"East Williamsburg": "North Brooklyn",
		"Fort Greene": "North Brooklyn",
		"Gowanus": "North Brooklyn",
		"Greenpoint": "North Brooklyn",
		"Ocean Hill": "North Brooklyn",
		"Park Slope": "North Brooklyn",
		"Prospect Heights": "North Brooklyn",
		"Red Hook": "North Brooklyn",
		"Stuyvesant Heights": "North Brooklyn",
		"Vinegar Hill": "North Brooklyn",
		"Weeksville": "North Brooklyn",
		"Williamsburg": "North Brooklyn",
		"Windsor Terrace": "North Brooklyn",
		"Bath Beach": "South Brooklyn",
		"Bay Ridge": "South Brooklyn",
		"Bensonhurst": "South Brooklyn",
		"Bergen Beach": "South Brooklyn",
		"Borough Park": "South Brooklyn",
		"Brownsville": "South Brooklyn",
		"Canarsie": "South Brooklyn",
		"City Line": "South Brooklyn",
		"Coney Island": "South Brooklyn",
		"Cypress Hills": "South Brooklyn",
		"Ditmas Park": "South Brooklyn",
		"Dyker Heights": "South Brooklyn",
		"East Flatbush": "South Brooklyn",
		"East New York": "South Brooklyn",
		"Farragut": "South Brooklyn",
		"Fiske Terrace": "South Brooklyn",
		"Flatbush": "South Brooklyn",
		"Flatlands": "South Brooklyn",
		"Fort Hamilton": "South Brooklyn",
		"Gravesend": "South Brooklyn",
		"Greenwood": "South Brooklyn",
		"Homecrest": "South Brooklyn",
		"Kensington": "South Brooklyn",
		"Manhattan Beach": "South Brooklyn",
		"Mapleton": "South Brooklyn",
		"Marine Park": "South Brooklyn",
		"Midwood": "South Brooklyn",
		"Mill Basin": "South Brooklyn",
		"New Lots": "South Brooklyn",
		"Prospect Lefferts Gardens": "South Brooklyn",
		"Prospect Park South": "South Brooklyn",
		"Sheepshead Bay": "South Brooklyn",
		"Starrett City": "South Brooklyn",
		"Sunset Park": "South Brooklyn",
		"Wingate": "South Brooklyn",
		"Annadale": "Staten Island",
		"Arden Heights": "Staten Island",
		"Arrochar": "Staten Island",
		"Bulls Head": "Staten Island",
		"Castleton Corners": "Staten Island",
		"Clifton": "Staten Island",
		"Dongan Hills": "Staten Island",
		"Elm Park": "Staten Island",
		"Eltingville": "Staten Island",
		"Emerson Hill": "Staten Island",
		"Grant City": "Staten Island",
		"Graniteville": "Staten Island",
		"Grasmere": "Staten Island",
		"Great Kills": "Staten Island",
		"Grymes Hill": "Staten Island",
		"Huguenot": "Staten Island",
		"Mariners Harbor": "Staten Island",
		"Meiers Corners": "Staten Island",
		"Midland Beach": "Staten Island",
		"New Brighton": "Staten Island",
		"New Dorp": "Staten Island",
		"New Dorp Beach": "Staten Island",
		"New Springville": "Staten Island",
		"Oakwood": "Staten Island",
		"Park Hill": "Staten Island",
		"Port Richmond": "Staten Island",
		"Princes Bay": "Staten Island",
		"Richmondtown": "Staten Island",
		"Rosebank": "Staten Island",
		"Rossville": "Staten Island",
		"Saint George": "Staten Island",
		"Shore Acres": "Staten Island",
		"Silver Lake": "Staten Island",
		"South Beach": "Staten Island",
		"Stapleton": "Staten Island",
		"Tompkinsville": "Staten Island",
		"Tottenville": "Staten Island",
		"West Brighton": "Staten Island",
		"Westerleigh": "Staten Island",
		"Willowbrook": "Staten Island",
		"Woodrow": "Staten Island",
		"Astoria": "W. Queens",
		"Ditmars-Steinway": "W. Queens",
		"Hunters Point": "W. Queens",
		"Long Island City": "W. Queens",
		"Sunnyside": "W. Queens",
		"Woodside": "W. Queens",
		"Arverne": "Queens",
		"Auburndale": "Queens",
		"Bay Terrace": "Queens",
		"Bayside": "Queens",
		"Bayswater": "Queens",
		"Beechhurst": "Queens",
		"Briarwood": "Queens",
		"Brookville": "Queens",
		"College Point": "Queens",
		"Corona": "Queens",
		"Douglaston": "Queens",
		"East Elmhurst": "Queens",
		"East Flushing": "Queens",
		"Elmhurst": "Queens",
		"Far Rockaway": "Queens",
		"Flushing": "Queens",
		"Forest Hills": "Queens",
		"Fresh Meadows": "Queens",
		"Glen Oaks": "Queens",
		"Glendale": "Queens",
		"Hillcrest": "Queens",
		"Hollis": "Queens",
		"Jackson Heights": "Queens",
		"Jamaica": "Queens",
		"Jamaica Estates": "Queens",
		"Jamaica Hills": "Queens",
		"Kew Gardens": "Queens",
		"Kew Gardens Hills": "Queens",
		"Laurelton": "Queens",
		"Lindenwood": "Queens",
		"Little Neck": "Queens",
		"Malba": "Queens",
		"Maspeth": "Queens",
		"Middle Village": "Queens",
		"North Corona": "Queens",
		"North New York": "Queens",
		"Oakland Gardens": "Queens",
		"Old Howard Beach": "Queens",
		"Ozone Park": "Queens",
		"Pomonok": "Queens",
		"Queens": "Queens",
		"Queens Village": "Queens",
		"Ramblersville": "Queens",
		"Rego Park": "Queens",
		"Richmond Hill": "Queens",
		"Ridgewood": "Queens",
		"Rockaway Park": "Queens",
		"Rockwood Park": "Queens",
		"Rosedale": "Queens",
		"South Jamaica": "Queens",
		"South Ozone Park": "Queens",
		"Springfield Gardens": "Queens",
		"St. Albans": "Queens",
		"The Rockaways": "Queens",
		"Whitestone": "Queens",
		"Woodhaven": "Queens",	}
}

// NineRegionFallback resolves a nine-region label from coordinates. Unlike
// BoroughFallback it never returns Unknown; everything unmatched lands in
// Queens, the catch-all of the original table.
func NineRegionFallback(lat, lng float64) string {
	if lat < 40.65 && lng < -74.04 {
		return StatenIsland
	}
	if lat > 40.85 || (lat > 40.80 && lng > -73.94) {
		if lat < 40.818 {
			return SouthBronx
		}
		return Bronx
	}
	if lng > -74.03 && lng < -73.90 && lat > 40.70 && lat < 40.88 {
		if lng > -73.96 || lat < 40.75 {
			// East side boundary ~96th St, west side ~110th St.
			if lng > -73.96 && lat >= 40.785 {
				return UpperManhattan
			}
			if lng <= -73.96 && lat >= 40.800 {
				return UpperManhattan
			}
			return LowerManhattan
		}
	}
	if lat < 40.74 && lng < -73.83 {
		if lat > 40.660 {
			return NorthBrooklyn
		}
		return SouthBrooklyn
	}
	if lng > -73.95 && lng < -73.90 && lat > 40.73 {
		return WestQueens
	}
	return Queens
}
