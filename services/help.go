package services

const cmdHelper = `
- /autoDelete to toggle whether bot should auto delete message.

- ` + "```/links message_link range```" + `: Transfer sequential restricted content.
- ` + "```/url file_url```" + `: Upload file through url.
`

const startRes = `
Transfer files to the drive.

Forward or upload files to me, or pass message link to transfer restricted content from group or channel.
` + cmdHelper + `
- /help: Ask for help.
`

const helpRes = cmdHelper + `
- To transfer files, forward or upload to me.
- To transfer restricted content, right click the content, copy the message link, and send to me.
- Tap Status on replied status message to locate current job.
- Uploading through url will call the drive's API, which means the drive's server will visit the url and download the file for you. If the url is invalid to the drive, the bot will try using bot's uploader to transfer.
`

const checkInGroupRes = `
This bot must be used in a Group!

Add this bot to a Group as Admin, and give it ability to Delete Messages.
`

const notLoginRes = `
You haven't logined to Telegram.
`

const linksUsageRes = "Command ```/links``` format wrong.\n\nUsage: ```/links message_link range```"

const urlUsageRes = "Command ```/url``` format wrong.\n\nUsage: ```/url file_url```"

const autoDeleteOnRes = "Bot will now auto delete messages after a job is done."

const autoDeleteOffRes = "Bot will now keep messages after a job is done."
