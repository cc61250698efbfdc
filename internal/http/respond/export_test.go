package respond

var UploadLimited = upload
