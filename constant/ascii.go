package constant

// AsciiArtLogo is printed at the top of the root help text.
const AsciiArtLogo = `
 _                    _
| |_ _  _ _ __  ___  | |_ ___ _  _ _ _
|  _| || | '_ \/ -_) |  _/ _ \ || | '_|
 \__|\_, | .__/\___|  \__\___/\_,_|_|
     |__/|_|`
