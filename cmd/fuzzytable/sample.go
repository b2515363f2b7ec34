package main

const logoPNG = "data:image/png;base64,iVBORw0KGgoAAAANSUhEUgAAAOEAAADhCAMAAAAJbSJIAAAAWlBMVEX///8AI5XtKTntJzcAIZS1vNwLMJy4wN35wcXuNUX5vsJBVKr719nwWGPtIzTQ1uoAHJPuMEDv8fjX3O7+7/H83+HByONQZLL6yc3yanTxYWwAKZoAGZJIXbCCdoh+AAABGklEQVR4nO3dyRGCABBEURXcd0DALf80veBZreqL+n4AXfMimNFIkiRJkiRJkiRJkiRJ+qRqn6muQgc1p02mZhhs7+tIXRsS9udtpEs/DE6vt0Og23UeEi6Ou0jH1VM4K8eByllMuCwmgYolISEhISEhISEhISEhISEhISEhISEhISEhISEhISEhISEhISEhISEhISEhISEhISEhISEhISEhISEhISEhISEhISEhISEhISEhISEhISEhISEhISEhISEhISEhISEhISEhISEhISEhISEhISEhISEhISEhISEhISEhISEhIeFXCX/+t3p7f/H4/s26NiTszy8e37/ZpR8Gq32mugoJm9MmUxM6SJIkSZIkSZIkSZIkSf/SA0zHySuCYw5NAAAAAElFTkSuQmCC"

// sampleTOML is used when no config file is given.
const sampleTOML = `
columns = ["name", "position", "country", "salary", "remote", "image"]

[[rows]]
name = "Oles"
position = "Developer"
country = "China"
salary = 5200.0
remote = true
image = "` + logoPNG + `"

[[rows]]
name = "Mark"
position = "Designer"
country = "USA"
salary = 4100.5
remote = false

[[rows]]
name = "Anna"
position = "Designer"
country = "UK"
salary = 4800.0

[[rows]]
name = "Setup"
position = "Designer"
country = "Ukraine"
remote = true

[editors]
country = "lookup"
salary = "usd"
remote = "bool"
image = "image"

[lookup]
delay = "1s"

[lookup.table]
China = "🇨🇳 China"
USA = "🇺🇸 USA"
UK = "🇬🇧 UK"
Ukraine = "🇺🇦 Ukraine"
`
